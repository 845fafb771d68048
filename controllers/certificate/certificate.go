package certificateController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CertificateResponse is an issued certificate with the course title joined
// in at read time.
type CertificateResponse struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"user_id"`
	CourseID          uint      `json:"course_id"`
	CertificateNumber string    `json:"certificate_number"`
	IssuedAt          time.Time `json:"issued_at"`
	CourseTitle       *string   `json:"course_title"`
}

// GetStudentCertificates lists the certificates issued to a student.
func GetStudentCertificates(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	var certificates []models.Certificate
	if err := database.Database.Db.Where("user_id = ?", studentID).Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateResponse, 0, len(certificates))
	for _, certificate := range certificates {
		resp := CertificateResponse{
			ID:                certificate.ID,
			UserID:            certificate.UserID,
			CourseID:          certificate.CourseID,
			CertificateNumber: certificate.CertificateNumber,
			IssuedAt:          certificate.IssuedAt,
		}
		var course models.Course
		if err := database.Database.Db.First(&course, certificate.CourseID).Error; err == nil {
			resp.CourseTitle = &course.Title
		}
		result = append(result, resp)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", result)
}
