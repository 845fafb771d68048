package courseController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseResponse is a course with the teacher's name joined in at read time.
type CourseResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TeacherID   uint    `json:"teacher_id"`
	IsActive    bool    `json:"is_active"`
	TeacherName *string `json:"teacher_name"`
}

func toCourseResponse(db *gorm.DB, course models.Course) CourseResponse {
	resp := CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		TeacherID:   course.TeacherID,
		IsActive:    course.IsActive,
	}

	var teacher models.User
	if err := db.First(&teacher, course.TeacherID).Error; err == nil {
		resp.TeacherName = &teacher.Name
	}
	return resp
}

// CreateCourse creates a course owned by the calling teacher.
func CreateCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(models.User)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		TeacherID:   user.ID,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		TeacherID:   course.TeacherID,
		IsActive:    course.IsActive,
		TeacherName: &user.Name,
	})
}

// ListCourses lists courses, hiding inactive ones unless requested.
func ListCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*courseValidator.CourseListQuery)
	if !ok {
		reqData = &courseValidator.CourseListQuery{}
	}

	db := database.Database.Db
	query := db.Model(&models.Course{})

	if reqData.TeacherID != nil {
		query = query.Where("teacher_id = ?", *reqData.TeacherID)
	}
	if !reqData.ShowInactive {
		query = query.Where("is_active = ?", true)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, toCourseResponse(db, course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCourse returns a single course by ID.
func GetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", toCourseResponse(database.Database.Db, course))
}

// UpdateCourse updates the provided fields of a course owned by the caller.
func UpdateCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(models.User)
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsCourseOwner(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to update this course!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", toCourseResponse(database.Database.Db, course))
}

// ToggleCourse flips a course's active flag.
func ToggleCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(models.User)
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsCourseOwner(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to modify this course!", nil)
	}

	course.IsActive = !course.IsActive
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", toCourseResponse(database.Database.Db, course))
}

// DeleteCourse removes a course and its children. A course with enrolled
// students cannot be deleted.
func DeleteCourse(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(models.User)
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsCourseOwner(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to delete this course!", nil)
	}

	var enrollments int64
	database.Database.Db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollments)
	if enrollments > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot delete course with enrolled students!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := DeleteCourseChildren(tx, course.ID); err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCourseChildren removes every record owned by a course. Used here and
// by the user-deletion cascade, which removes courses regardless of
// enrollments.
func DeleteCourseChildren(tx *gorm.DB, courseID uint) error {
	if err := tx.Where("course_id = ?", courseID).Delete(&models.Lesson{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&models.Quiz{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&models.StudentProgress{}).Error; err != nil {
		return err
	}
	return tx.Where("course_id = ?", courseID).Delete(&models.Certificate{}).Error
}
