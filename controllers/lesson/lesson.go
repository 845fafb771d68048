package lessonController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	lessonValidator "lms/validators/lesson"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson adds a lesson to a course owned by the calling teacher.
func CreateLesson(c *fiber.Ctx) error {
	user := c.Locals("currentUser").(models.User)

	reqData, ok := c.Locals("validatedLesson").(*lessonValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !middleware.IsCourseOwner(user, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to add lessons to this course!", nil)
	}

	lesson := models.Lesson{
		Title:    reqData.Title,
		Content:  reqData.Content,
		CourseID: reqData.CourseID,
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// GetCourseLessons lists a course's lessons for the owning teacher or an
// enrolled student.
func GetCourseLessons(c *fiber.Ctx) error {
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

	var lessons []models.Lesson
	if err := database.Database.Db.Where("course_id = ?", courseID).Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}
