package adapters

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

// GinHandler returns a Gin handler serving doc
func GinHandler(doc openapi.Documented) gin.HandlerFunc {
	spec := NewSpec(doc)
	return func(c *gin.Context) {
		body, contentType, err := spec.Body(c.Query(FormatParam))
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.Data(http.StatusOK, contentType, body)
	}
}

// MountGin registers the document at path on any Gin router or group
func MountGin(r gin.IRoutes, path string, doc openapi.Documented) {
	r.GET(path, GinHandler(doc))
}
