package progressValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProgressRequest is the validated direct-upsert body. Pointer fields
// distinguish "not provided" from zero values so the handler can apply a
// partial update.
type UpdateProgressRequest struct {
	StudentID         uint  `json:"student_id" validate:"required"`
	CourseID          uint  `json:"course_id" validate:"required"`
	LessonCompleted   *bool `json:"lesson_completed"`
	QuizScore         *int  `json:"quiz_score"`
	QuizTotal         *int  `json:"quiz_total"`
	QuizAttempts      *int  `json:"quiz_attempts"`
	CertificateEarned *bool `json:"certificate_earned"`
}

// UpdateProgress validator middleware
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				if fe.Field() == "StudentID" {
					errors["student_id"] = "Student ID is required!"
				}
				if fe.Field() == "CourseID" {
					errors["course_id"] = "Course ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
