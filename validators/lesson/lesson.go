package lessonValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateLessonRequest is the validated lesson creation body.
type CreateLessonRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	CourseID uint   `json:"course_id" validate:"required"`
}

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				if fe.Field() == "Title" {
					errors["title"] = "Title is required!"
				}
				if fe.Field() == "CourseID" {
					errors["course_id"] = "Course ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}
