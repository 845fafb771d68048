package quizRoutes

import (
	quizControllers "lms/controllers/quiz"
	"lms/middleware"
	"lms/models"
	courseValidators "lms/validators/course"
	quizValidators "lms/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quizzes")

	quizGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), quizValidators.CreateQuiz(), quizControllers.CreateQuiz)
	quizGroup.Get("/course/:id", middleware.JWTMiddleware, courseValidators.CourseID(), quizControllers.GetCourseQuizzes)
	quizGroup.Post("/submit", middleware.JWTMiddleware, quizValidators.SubmitQuiz(), quizControllers.SubmitQuiz)
}
