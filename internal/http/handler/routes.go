package handler

import (
	"github.com/gofiber/fiber/v2"

	"finengine/internal/engine"
)

// RegisterRoutes attaches the engine's route table to app.
// Call it after any operational routes: the trailing catch-all answers every
// request no earlier route matched.
func RegisterRoutes(app *fiber.App, eng *engine.Engine) {
	for _, r := range eng.Routes {
		app.Add(r.Method, r.Path, r.Handler)
		// GET routes also answer HEAD, matching fiber's app.Get.
		if r.Method == fiber.MethodGet {
			if _, ok := eng.Lookup(fiber.MethodHead, r.Path); !ok {
				app.Add(fiber.MethodHead, r.Path, r.Handler)
			}
		}
	}

	app.Use(NotFound(eng))
}

// NotFound is the catch-all for requests outside the route table, including
// a known path requested with a method it does not serve. Every miss gets
// the engine's 404 body. Preflight OPTIONS requests never reach it; CORS
// answers them first.
func NotFound(eng *engine.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeNotFound(c, eng)
	}
}
