package enrollmentController_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	enrollmentController "lms/controllers/enrollment"
	"lms/models"
	"lms/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEnrollment(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	student := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)
	token := testutils.TokenFor(t, student)

	active := models.Course{Title: "Biology", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&active).Error)
	inactive := models.Course{Title: "Retired", TeacherID: teacher.ID, IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	t.Run("active course", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodPost, "/enrollments/", token, map[string]interface{}{
			"user_id":   student.ID,
			"course_id": active.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result enrollmentController.EnrollmentResponse
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.NotNil(t, result.CourseTitle)
		assert.Equal(t, "Biology", *result.CourseTitle)
	})

	t.Run("duplicate enrollment", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodPost, "/enrollments/", token, map[string]interface{}{
			"user_id":   student.ID,
			"course_id": active.ID,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Message, "Already enrolled")

		// Exactly one enrollment row exists afterward.
		var count int64
		db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", student.ID, active.ID).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("inactive course", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodPost, "/enrollments/", token, map[string]interface{}{
			"user_id":   student.ID,
			"course_id": inactive.ID,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, env.Message, "inactive course")
	})

	t.Run("missing course", func(t *testing.T) {
		resp, _ := testutils.Request(t, app, http.MethodPost, "/enrollments/", token, map[string]interface{}{
			"user_id":   student.ID,
			"course_id": 9999,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestEnrollmentListings(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	student := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)

	course := models.Course{Title: "Chemistry", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Enrollment{UserID: student.ID, CourseID: course.ID}).Error)

	t.Run("by student", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodGet, "/enrollments/student/"+strconv.FormatUint(uint64(student.ID), 10), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []enrollmentController.EnrollmentResponse
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Len(t, result, 1)
		require.NotNil(t, result[0].CourseTitle)
		assert.Equal(t, "Chemistry", *result[0].CourseTitle)
	})

	t.Run("by course", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodGet, "/enrollments/course/"+strconv.FormatUint(uint64(course.ID), 10), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []enrollmentController.EnrollmentResponse
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Len(t, result, 1)
		require.NotNil(t, result[0].UserName)
		assert.Equal(t, "Sam Student", *result[0].UserName)
	})

	t.Run("dangling course resolves to null", func(t *testing.T) {
		// Remove the course out from under the enrollment.
		require.NoError(t, db.Delete(&course).Error)

		resp, env := testutils.Request(t, app, http.MethodGet, "/enrollments/student/"+strconv.FormatUint(uint64(student.ID), 10), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result []enrollmentController.EnrollmentResponse
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.Len(t, result, 1)
		assert.Nil(t, result[0].CourseTitle)
	})
}
