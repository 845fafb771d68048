package courseRoutes

import (
	courseControllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	courseValidators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Get("/", courseValidators.CourseList(), courseControllers.ListCourses)
	courseGroup.Get("/:id", courseValidators.CourseID(), courseControllers.GetCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseValidators.CourseID(), courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	courseGroup.Patch("/:id/toggle", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseValidators.CourseID(), courseControllers.ToggleCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), courseValidators.CourseID(), courseControllers.DeleteCourse)
}
