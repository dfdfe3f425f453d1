package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/study-assistant/web"
)

// PageHandler serves the embedded single-page UI.
type PageHandler struct{}

func NewPageHandler() *PageHandler { return &PageHandler{} }

func (h *PageHandler) Index(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.Send(web.IndexHTML)
}
