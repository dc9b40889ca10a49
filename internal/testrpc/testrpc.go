//go:build openapigen

//go:generate go run github.com/Ash-L2L/l2l-openapi/cmd/openapigen -quiet testrpc.go

// Package testrpc holds an annotated RPC interface exercising every
// directive form.
package testrpc

import (
	"context"
	"net/netip"
)

// TestRPC is served over JSON-RPC.
//
//openapi:gen ref_schemas [Inner0, Inner1]
type TestRPC interface {
	Subscriptions

	// Doc comment
	TestRPC0(ctx context.Context, someU64 uint64) (uint64, error)

	/* Block doc comment */
	TestRPC1(ctx context.Context, someU32 uint32) (uint32, error)

	NoDocComment(ctx context.Context, someU32 uint32) (uint32, error)

	// No params
	NoParams(ctx context.Context) (uint32, error)

	// Multiple params
	MultipleParams(ctx context.Context, someU64 uint64, someU32 uint32) (uint32, error)

	// No response
	NoResponse(ctx context.Context, someU32 uint32)

	// Result unit
	//openapi:method output_schema(ToSchema)
	ResultUnit(ctx context.Context, someU32 uint32) error

	// Result socket address
	//openapi:method output_schema(PartialSchema = "AddrPortSchema")
	ResultAddrPort(ctx context.Context, someU32 uint32) (netip.AddrPort, error)

	// Socket address param
	AddrPortParam(
		ctx context.Context,
		//openapi:arg schema(PartialSchema = "AddrPortSchema")
		addr netip.AddrPort,
	) (uint32, error)

	// Result has inner refs
	//openapi:method output_schema(ToSchema)
	ResultInnerRef(ctx context.Context, someU32 uint32) (InnerRefs, error)
}
