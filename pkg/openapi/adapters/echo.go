package adapters

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

// EchoHandler returns an Echo handler serving doc
func EchoHandler(doc openapi.Documented) echo.HandlerFunc {
	spec := NewSpec(doc)
	return func(c echo.Context) error {
		body, contentType, err := spec.Body(c.QueryParam(FormatParam))
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.Blob(http.StatusOK, contentType, body)
	}
}

// MountEcho registers the document at path on an Echo instance
func MountEcho(e *echo.Echo, path string, doc openapi.Documented) {
	e.GET(path, EchoHandler(doc))
}
