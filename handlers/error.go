package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/parts-pile/car-sales/dataset"
	"github.com/parts-pile/car-sales/ui"
)

// CustomErrorHandler renders errors as an HTML error page, or as JSON for
// API routes.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	var loadErr *dataset.LoadError
	if errors.As(err, &loadErr) {
		log.Printf("[dataset] %v", loadErr)
	}

	if strings.HasPrefix(ctx.Path(), "/api/") {
		return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return ui.ErrorPage(code, err.Error()).Render(ctx)
}
