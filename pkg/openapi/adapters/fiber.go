package adapters

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ash-L2L/l2l-openapi/pkg/openapi"
)

// FiberHandler returns a Fiber handler serving doc
func FiberHandler(doc openapi.Documented) fiber.Handler {
	spec := NewSpec(doc)
	return func(c *fiber.Ctx) error {
		body, contentType, err := spec.Body(c.Query(FormatParam))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, contentType)
		return c.Status(fiber.StatusOK).Send(body)
	}
}

// MountFiber registers the document at path on any Fiber router
func MountFiber(r fiber.Router, path string, doc openapi.Documented) {
	r.Get(path, FiberHandler(doc))
}
