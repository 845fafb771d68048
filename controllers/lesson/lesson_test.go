package lessonController_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"lms/models"
	"lms/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLesson(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	other := testutils.CreateUser(t, db, "Oscar Other", "oscar@test.com", "secret123", models.RoleTeacher)

	course := models.Course{Title: "Biology", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	t.Run("owner adds lesson", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodPost, "/lessons/", testutils.TokenFor(t, teacher), map[string]interface{}{
			"title":     "Cells",
			"content":   "All living things are made of cells.",
			"course_id": course.ID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var lesson models.Lesson
		require.NoError(t, json.Unmarshal(env.Data, &lesson))
		assert.Equal(t, course.ID, lesson.CourseID)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		resp, _ := testutils.Request(t, app, http.MethodPost, "/lessons/", testutils.TokenFor(t, other), map[string]interface{}{
			"title":     "Intruder",
			"course_id": course.ID,
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing course", func(t *testing.T) {
		resp, _ := testutils.Request(t, app, http.MethodPost, "/lessons/", testutils.TokenFor(t, teacher), map[string]interface{}{
			"title":     "Ghost",
			"course_id": 9999,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetCourseLessonsAccess(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	otherTeacher := testutils.CreateUser(t, db, "Oscar Other", "oscar@test.com", "secret123", models.RoleTeacher)
	enrolled := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)
	outsider := testutils.CreateUser(t, db, "Uma Unenrolled", "uma@test.com", "secret123", models.RoleStudent)

	course := models.Course{Title: "Biology", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Lesson{Title: "Cells", CourseID: course.ID}).Error)
	require.NoError(t, db.Create(&models.Enrollment{UserID: enrolled.ID, CourseID: course.ID}).Error)

	path := "/lessons/course/" + strconv.FormatUint(uint64(course.ID), 10)

	tests := []struct {
		name string
		user models.User
		want int
	}{
		{name: "owning teacher", user: teacher, want: http.StatusOK},
		{name: "enrolled student", user: enrolled, want: http.StatusOK},
		{name: "other teacher", user: otherTeacher, want: http.StatusForbidden},
		{name: "unenrolled student", user: outsider, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := testutils.Request(t, app, http.MethodGet, path, testutils.TokenFor(t, tt.user), nil)
			assert.Equal(t, tt.want, resp.StatusCode)

			if tt.want == http.StatusOK {
				var lessons []models.Lesson
				require.NoError(t, json.Unmarshal(env.Data, &lessons))
				assert.Len(t, lessons, 1)
			}
		})
	}

	t.Run("missing course", func(t *testing.T) {
		resp, _ := testutils.Request(t, app, http.MethodGet, "/lessons/course/9999", testutils.TokenFor(t, teacher), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
