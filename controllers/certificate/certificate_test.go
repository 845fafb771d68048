package certificateController_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	certificateController "lms/controllers/certificate"
	"lms/models"
	"lms/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStudentCertificates(t *testing.T) {
	db := testutils.Setup(t)
	app := testutils.NewApp()

	teacher := testutils.CreateUser(t, db, "Tina Teacher", "tina@test.com", "secret123", models.RoleTeacher)
	student := testutils.CreateUser(t, db, "Sam Student", "sam@test.com", "secret123", models.RoleStudent)

	course := models.Course{Title: "Astronomy", TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	certificate := models.Certificate{
		UserID:            student.ID,
		CourseID:          course.ID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now(),
	}
	require.NoError(t, db.Create(&certificate).Error)

	resp, env := testutils.Request(t, app, http.MethodGet, "/certificates/student/"+strconv.FormatUint(uint64(student.ID), 10), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result []certificateController.CertificateResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result, 1)
	assert.Equal(t, certificate.CertificateNumber, result[0].CertificateNumber)
	require.NotNil(t, result[0].CourseTitle)
	assert.Equal(t, "Astronomy", *result[0].CourseTitle)

	t.Run("student without certificates", func(t *testing.T) {
		resp, env := testutils.Request(t, app, http.MethodGet, "/certificates/student/"+strconv.FormatUint(uint64(teacher.ID), 10), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var empty []certificateController.CertificateResponse
		require.NoError(t, json.Unmarshal(env.Data, &empty))
		assert.Empty(t, empty)
	})
}
