package lessonRoutes

import (
	lessonControllers "lms/controllers/lesson"
	"lms/middleware"
	"lms/models"
	courseValidators "lms/validators/course"
	lessonValidators "lms/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/lessons")

	lessonGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), lessonValidators.CreateLesson(), lessonControllers.CreateLesson)
	lessonGroup.Get("/course/:id", middleware.JWTMiddleware, courseValidators.CourseID(), lessonControllers.GetCourseLessons)
}
