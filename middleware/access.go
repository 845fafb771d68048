package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// CurrentUser resolves the authenticated user set by JWTMiddleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return models.User{}, false
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return models.User{}, false
	}
	return user, true
}

// RequireRole returns a middleware that resolves the authenticated user and
// enforces the given role. The resolved user is stored in Locals as
// "currentUser" for the downstream handler.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if user.Role != role {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Requires "+role+" role.", nil)
		}

		c.Locals("currentUser", user)
		return c.Next()
	}
}

// IsCourseOwner reports whether the user is the teacher who owns the course.
func IsCourseOwner(user models.User, course models.Course) bool {
	return course.TeacherID == user.ID
}

// IsEnrolled reports whether an enrollment row exists for (user, course).
func IsEnrolled(userID, courseID uint) bool {
	var enrollment models.Enrollment
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	return err == nil
}

// CanAccessCourseContent checks the content-read rule for lessons and
// quizzes: a teacher may read only their own course, a student only a course
// they are enrolled in. Returns a denial message, empty when allowed.
func CanAccessCourseContent(user models.User, course models.Course) string {
	if user.Role == models.RoleTeacher {
		if !IsCourseOwner(user, course) {
			return "Not authorized to view this course!"
		}
		return ""
	}

	if !IsEnrolled(user.ID, course.ID) {
		return "You must be enrolled in this course to view its content!"
	}
	return ""
}
