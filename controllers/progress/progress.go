package progressController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	progressValidator "lms/validators/progress"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProgressResponse is a progress row with course title and student name
// joined in at read time. Dangling relations resolve to null.
type ProgressResponse struct {
	ID                uint    `json:"id"`
	StudentID         uint    `json:"student_id"`
	CourseID          uint    `json:"course_id"`
	LessonCompleted   bool    `json:"lesson_completed"`
	QuizScore         int     `json:"quiz_score"`
	QuizTotal         int     `json:"quiz_total"`
	QuizAttempts      int     `json:"quiz_attempts"`
	CertificateEarned bool    `json:"certificate_earned"`
	CourseTitle       *string `json:"course_title"`
	StudentName       *string `json:"student_name"`
}

func toProgressResponse(db *gorm.DB, progress models.StudentProgress) ProgressResponse {
	resp := ProgressResponse{
		ID:                progress.ID,
		StudentID:         progress.StudentID,
		CourseID:          progress.CourseID,
		LessonCompleted:   progress.LessonCompleted,
		QuizScore:         progress.QuizScore,
		QuizTotal:         progress.QuizTotal,
		QuizAttempts:      progress.QuizAttempts,
		CertificateEarned: progress.CertificateEarned,
	}

	var course models.Course
	if err := db.First(&course, progress.CourseID).Error; err == nil {
		resp.CourseTitle = &course.Title
	}
	var student models.User
	if err := db.First(&student, progress.StudentID).Error; err == nil {
		resp.StudentName = &student.Name
	}
	return resp
}

// GetStudentProgress lists a student's progress rows.
func GetStudentProgress(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	var progressList []models.StudentProgress
	if err := database.Database.Db.Where("student_id = ?", studentID).Find(&progressList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]ProgressResponse, 0, len(progressList))
	for _, progress := range progressList {
		result = append(result, toProgressResponse(database.Database.Db, progress))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", result)
}

// GetCourseProgress lists a course's progress rows.
func GetCourseProgress(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var progressList []models.StudentProgress
	if err := database.Database.Db.Where("course_id = ?", courseID).Find(&progressList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]ProgressResponse, 0, len(progressList))
	for _, progress := range progressList {
		result = append(result, toProgressResponse(database.Database.Db, progress))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", result)
}

// UpdateProgress upserts a progress row with exactly the fields provided.
// This is a direct overwrite used for lesson-completion tracking: unlike the
// grading path it does not enforce the attempt cap or the best-score rule,
// and it never issues certificates.
func UpdateProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*progressValidator.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var progress models.StudentProgress
	err := db.Where("student_id = ? AND course_id = ?", reqData.StudentID, reqData.CourseID).First(&progress).Error

	if err != nil {
		progress = models.StudentProgress{
			StudentID: reqData.StudentID,
			CourseID:  reqData.CourseID,
		}
	}

	// Apply only the fields explicitly provided.
	if reqData.LessonCompleted != nil {
		progress.LessonCompleted = *reqData.LessonCompleted
	}
	if reqData.QuizScore != nil {
		progress.QuizScore = *reqData.QuizScore
	}
	if reqData.QuizTotal != nil {
		progress.QuizTotal = *reqData.QuizTotal
	}
	if reqData.QuizAttempts != nil {
		progress.QuizAttempts = *reqData.QuizAttempts
	}
	if reqData.CertificateEarned != nil {
		progress.CertificateEarned = *reqData.CertificateEarned
	}

	if err := db.Save(&progress).Error; err != nil {
		log.Printf("Error upserting progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", toProgressResponse(db, progress))
}
