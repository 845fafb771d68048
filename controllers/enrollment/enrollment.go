package enrollmentController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	enrollmentValidator "lms/validators/enrollment"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollmentResponse is an enrollment with the counterpart's display fields
// joined in at read time. Dangling relations resolve to null.
type EnrollmentResponse struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	CourseID    uint    `json:"course_id"`
	CourseTitle *string `json:"course_title"`
	UserName    *string `json:"user_name"`
}

func toEnrollmentResponse(db *gorm.DB, enrollment models.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:       enrollment.ID,
		UserID:   enrollment.UserID,
		CourseID: enrollment.CourseID,
	}

	var course models.Course
	if err := db.First(&course, enrollment.CourseID).Error; err == nil {
		resp.CourseTitle = &course.Title
	}
	var user models.User
	if err := db.First(&user, enrollment.UserID).Error; err == nil {
		resp.UserName = &user.Name
	}
	return resp
}

// CreateEnrollment enrolls a user in an active course. Duplicate enrollment
// and inactive courses are rejected before any write.
func CreateEnrollment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnrollment").(*enrollmentValidator.CreateEnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.IsActive {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot enroll in inactive course!", nil)
	}

	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", reqData.UserID, reqData.CourseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:   reqData.UserID,
		CourseID: reqData.CourseID,
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", toEnrollmentResponse(db, enrollment))
}

// GetStudentEnrollments lists a student's enrollments.
func GetStudentEnrollments(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", studentID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		result = append(result, toEnrollmentResponse(database.Database.Db, enrollment))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// GetCourseEnrollments lists a course's enrollments.
func GetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		result = append(result, toEnrollmentResponse(database.Database.Db, enrollment))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}
