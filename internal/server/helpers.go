package server

import (
	"errors"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter as a positive uint. On failure it
// writes a 404 JSON response and returns errResponseWritten; an id that
// does not parse cannot name an existing resource.
func (s *Server) parseID(c *fiber.Ctx, param, resource string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewNotFoundError(resource, c.Params(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// pageParams extracts page and per_page query parameters. Clamping to the
// allowed range happens in the service layer.
func pageParams(c *fiber.Ctx) (page, perPage int) {
	return c.QueryInt("page", 1), c.QueryInt("per_page", service.DefaultPerPage)
}

// identity returns the authenticated identity for the request, or nil.
func (s *Server) identity(c *fiber.Ctx) *models.Identity {
	return middleware.IdentityFrom(c)
}
