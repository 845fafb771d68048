package enrollmentRoutes

import (
	enrollmentControllers "lms/controllers/enrollment"
	"lms/middleware"
	enrollmentValidators "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments")

	enrollmentGroup.Post("/", middleware.JWTMiddleware, enrollmentValidators.CreateEnrollment(), enrollmentControllers.CreateEnrollment)
	enrollmentGroup.Get("/student/:id", enrollmentValidators.IDParam("studentID"), enrollmentControllers.GetStudentEnrollments)
	enrollmentGroup.Get("/course/:id", enrollmentValidators.IDParam("courseID"), enrollmentControllers.GetCourseEnrollments)
}
