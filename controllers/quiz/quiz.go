package quizController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	quizValidator "lms/validators/quiz"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Certificate-earning threshold in percent.
const certificateThreshold = 80.0

// Maximum graded submissions per (student, course).
const maxQuizAttempts = 2

// QuizResult is the grading outcome, reflecting the stored best state for
// the (student, course) pair.
type QuizResult struct {
	Score             int     `json:"score"`
	Total             int     `json:"total"`
	Percentage        float64 `json:"percentage"`
	Attempts          int     `json:"attempts"`
	CertificateEarned bool    `json:"certificate_earned"`
}

// CreateQuiz adds a question to a course's quiz bank.
func CreateQuiz(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(models.User)

	reqData, ok := c.Locals("validatedQuiz").(*quizValidator.CreateQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsCourseOwner(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to add quizzes to this course!", nil)
	}

	quiz := models.Quiz{
		Question:      reqData.Question,
		OptionA:       reqData.OptionA,
		OptionB:       reqData.OptionB,
		OptionC:       reqData.OptionC,
		OptionD:       reqData.OptionD,
		CorrectAnswer: strings.ToUpper(reqData.CorrectAnswer),
		CourseID:      reqData.CourseID,
	}

	if err := database.Database.Db.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetCourseQuizzes lists a course's questions for the owning teacher or an
// enrolled student. Correct answers are never serialized.
func GetCourseQuizzes(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if msg := middleware.CanAccessCourseContent(user, course); msg != "" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, msg, nil)
	}

	var quizzes []models.Quiz
	if err := database.Database.Db.Where("course_id = ?", courseID).Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// SubmitQuiz grades a submitted answer set against the course's quiz bank
// and folds the result into the student's progress record. At most two
// graded attempts are allowed per (student, course); the stored score is the
// best raw score across attempts and the certificate flag never resets.
func SubmitQuiz(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*quizValidator.SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsEnrolled(user.ID, course.ID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course to take quizzes!", nil)
	}

	// The attempt cap is checked before any quiz content is loaded.
	var progress models.StudentProgress
	progressErr := db.Where("student_id = ? AND course_id = ?", user.ID, course.ID).First(&progress).Error
	hasProgress := progressErr == nil

	if hasProgress && progress.QuizAttempts >= maxQuizAttempts {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Maximum quiz attempts (2) reached!", nil)
	}

	var quizzes []models.Quiz
	if err := db.Where("course_id = ?", course.ID).Find(&quizzes).Error; err != nil || len(quizzes) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz questions found for this course!", nil)
	}

	score := 0
	total := len(quizzes)
	for _, quiz := range quizzes {
		answer, answered := reqData.Answers[strconv.FormatUint(uint64(quiz.ID), 10)]
		if answered && strings.EqualFold(answer, quiz.CorrectAnswer) {
			score++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}
	earnedThisAttempt := percentage >= certificateThreshold

	newlyEarned := false
	if !hasProgress {
		progress = models.StudentProgress{
			StudentID:         user.ID,
			CourseID:          course.ID,
			QuizScore:         score,
			QuizTotal:         total,
			QuizAttempts:      1,
			CertificateEarned: earnedThisAttempt,
		}
		newlyEarned = earnedThisAttempt
	} else {
		progress.QuizAttempts++
		// The best attempt is kept by raw score, not percentage.
		if score > progress.QuizScore {
			progress.QuizScore = score
			progress.QuizTotal = total
		}
		if earnedThisAttempt && !progress.CertificateEarned {
			progress.CertificateEarned = true
			newlyEarned = true
		}
	}

	tx := db.Begin()
	if err := tx.Save(&progress).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	var certificate models.Certificate
	if newlyEarned {
		certificate = models.Certificate{
			UserID:            user.ID,
			CourseID:          course.ID,
			CertificateNumber: uuid.NewString(),
			IssuedAt:          time.Now(),
		}
		if err := tx.Create(&certificate).Error; err != nil {
			tx.Rollback()
			log.Printf("Error issuing certificate: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
		}
	}
	tx.Commit()

	if newlyEarned {
		utils.SendCertificateEmail(user.Email, user.Name, course.Title, certificate.CertificateNumber)
	}

	storedPercentage := 0.0
	if progress.QuizTotal > 0 {
		storedPercentage = float64(progress.QuizScore) / float64(progress.QuizTotal) * 100
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", QuizResult{
		Score:             progress.QuizScore,
		Total:             progress.QuizTotal,
		Percentage:        storedPercentage,
		Attempts:          progress.QuizAttempts,
		CertificateEarned: progress.CertificateEarned,
	})
}
