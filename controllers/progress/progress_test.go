package progressController_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	progressController "lms/controllers/progress"
	"lms/models"
	"lms/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgressCreatesWithDefaults(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	student := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)
	course := models.Course{Title: "History", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	resp, env := testutils.Request(t, app, http.MethodPost, "/progress/update", testutils.TokenFor(t, student), map[string]interface{}{
		"student_id":       student.ID,
		"course_id":        course.ID,
		"lesson_completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result progressController.ProgressResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.LessonCompleted)
	assert.Equal(t, 0, result.QuizScore)
	assert.Equal(t, 0, result.QuizTotal)
	assert.Equal(t, 0, result.QuizAttempts)
	assert.False(t, result.CertificateEarned)
}

func TestUpdateProgressPartialUpdate(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	student := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)
	course := models.Course{Title: "History", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	seeded := models.StudentProgress{
		StudentID: student.ID, CourseID: course.ID,
		QuizScore: 4, QuizTotal: 5, QuizAttempts: 1, CertificateEarned: true,
	}
	require.NoError(t, db.Create(&seeded).Error)

	resp, _ := testutils.Request(t, app, http.MethodPost, "/progress/update", testutils.TokenFor(t, student), map[string]interface{}{
		"student_id":       student.ID,
		"course_id":        course.ID,
		"lesson_completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Only the provided field changed.
	var progress models.StudentProgress
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&progress).Error)
	assert.True(t, progress.LessonCompleted)
	assert.Equal(t, 4, progress.QuizScore)
	assert.Equal(t, 5, progress.QuizTotal)
	assert.Equal(t, 1, progress.QuizAttempts)
	assert.True(t, progress.CertificateEarned)
}

// The direct upsert is a plain overwrite: it can push quiz_attempts past the
// grading path's cap and clobber a better stored score.
func TestUpdateProgressBypassesGradingRules(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	student := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)
	course := models.Course{Title: "History", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	seeded := models.StudentProgress{
		StudentID: student.ID, CourseID: course.ID,
		QuizScore: 5, QuizTotal: 5, QuizAttempts: 2,
	}
	require.NoError(t, db.Create(&seeded).Error)

	resp, _ := testutils.Request(t, app, http.MethodPost, "/progress/update", testutils.TokenFor(t, student), map[string]interface{}{
		"student_id":    student.ID,
		"course_id":     course.ID,
		"quiz_score":    1,
		"quiz_attempts": 7,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var progress models.StudentProgress
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).First(&progress).Error)
	assert.Equal(t, 1, progress.QuizScore)
	assert.Equal(t, 7, progress.QuizAttempts)
}

func TestProgressListings(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	student := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)
	course := models.Course{Title: "Physics", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	progress := models.StudentProgress{StudentID: student.ID, CourseID: course.ID, QuizScore: 3, QuizTotal: 5, QuizAttempts: 1}
	require.NoError(t, db.Create(&progress).Error)

	t.Run("by student", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodGet, "/progress/student/"+strconv.FormatUint(uint64(student.ID), 10), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []progressController.ProgressResponse
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Len(t, result, 1)
		require.NotNil(t, result[0].CourseTitle)
		assert.Equal(t, "Physics", *result[0].CourseTitle)
		require.NotNil(t, result[0].StudentName)
		assert.Equal(t, "Sam Student", *result[0].StudentName)
	})

	t.Run("by course", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodGet, "/progress/course/"+strconv.FormatUint(uint64(course.ID), 10), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []progressController.ProgressResponse
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Len(t, result, 1)
		assert.Equal(t, 3, result[0].QuizScore)
	})

	t.Run("dangling student resolves to null", func(t *testing.T) {
		require.NoError(t, db.Delete(&models.User{}, student.ID).Error)

		resp, env := testutils.Request(t, app, http.MethodGet, "/progress/course/"+strconv.FormatUint(uint64(course.ID), 10), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []progressController.ProgressResponse
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Len(t, result, 1)
		assert.Nil(t, result[0].StudentName)
	})
}
