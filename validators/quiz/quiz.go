package quizValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateQuizRequest is the validated quiz creation body. The correct answer
// may arrive in any case; the controller normalizes it to uppercase.
type CreateQuizRequest struct {
	Question      string `json:"question" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c" validate:"required"`
	OptionD       string `json:"option_d" validate:"required"`
	CorrectAnswer string `json:"correct_answer" validate:"required,oneof=A B C D a b c d"`
	CourseID      uint   `json:"course_id" validate:"required"`
}

// SubmitQuizRequest is the validated quiz submission body. Answers map quiz
// IDs (as strings) to chosen letters; unknown or missing keys simply score
// nothing, so an empty map is accepted.
type SubmitQuizRequest struct {
	CourseID uint              `json:"course_id" validate:"required"`
	Answers  map[string]string `json:"answers"`
}

// CreateQuiz validator middleware
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fe := range err.(validator.ValidationErrors) {
				switch fe.Field() {
				case "Question":
					errors["question"] = "Question is required!"
				case "OptionA", "OptionB", "OptionC", "OptionD":
					errors["options"] = "All four options are required!"
				case "CorrectAnswer":
					errors["correct_answer"] = "Correct answer must be one of A, B, C or D!"
				case "CourseID":
					errors["course_id"] = "Course ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// SubmitQuiz validator middleware
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course ID is required!",
			})
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
