package userRoutes

import (
	userControllers "lms/controllers/user"
	userValidators "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Post("/", userValidators.Register(), userControllers.Register)
	userGroup.Get("/", userControllers.ListUsers)
	userGroup.Get("/:id", userValidators.UserID(), userControllers.GetUser)
	userGroup.Delete("/:id", userValidators.UserID(), userControllers.DeleteUser)
}
