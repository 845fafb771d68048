package certificateRoutes

import (
	certificateControllers "lms/controllers/certificate"
	enrollmentValidators "lms/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App) {
	certificateGroup := app.Group("/certificates")

	certificateGroup.Get("/student/:id", enrollmentValidators.IDParam("studentID"), certificateControllers.GetStudentCertificates)
}
