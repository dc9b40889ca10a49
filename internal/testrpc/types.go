package testrpc

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

type Inner0 struct {
	Inner0Bool bool   `json:"inner0_bool"`
	Inner0U64  uint64 `json:"inner0_u64"`
}

func (Inner0) ToSchema() (string, *openapi3.SchemaRef) {
	return openapi.Derive[Inner0]()
}

type Inner1 struct {
	Inner1Bool bool   `json:"inner1_bool"`
	Inner1U32  uint32 `json:"inner1_u32"`
}

func (Inner1) ToSchema() (string, *openapi3.SchemaRef) {
	return openapi.Derive[Inner1]()
}

// InnerRefs refers to Inner0 and Inner1 by component name
type InnerRefs struct {
	Inner0 Inner0 `json:"inner0"`
	Inner1 Inner1 `json:"inner1"`
}

func (InnerRefs) ToSchema() (string, *openapi3.SchemaRef) {
	return openapi.Derive[InnerRefs]()
}

// AddrPortSchema describes a netip.AddrPort, which marshals as "ip:port"
type AddrPortSchema struct{}

func (AddrPortSchema) PartialSchema() *openapi3.SchemaRef {
	return openapi3.NewStringSchema().NewRef()
}

// Subscriptions are streamed rather than called and are not documented
type Subscriptions interface {
	Subscribe(ctx context.Context) (<-chan struct{}, error)
}
