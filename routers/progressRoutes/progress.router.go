package progressRoutes

import (
	progressControllers "lms/controllers/progress"
	"lms/middleware"
	enrollmentValidators "lms/validators/enrollment"
	progressValidators "lms/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/student/:id", enrollmentValidators.IDParam("studentID"), progressControllers.GetStudentProgress)
	progressGroup.Get("/course/:id", enrollmentValidators.IDParam("courseID"), progressControllers.GetCourseProgress)
	progressGroup.Post("/update", middleware.JWTMiddleware, progressValidators.UpdateProgress(), progressControllers.UpdateProgress)
}
