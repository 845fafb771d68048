// Package testutils wires a fiber application identical to the production
// one against an in-memory sqlite database, so handler tests exercise the
// real router, validator and middleware chain.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	authRoutes "lms/routers/authRoutes"
	certificateRoutes "lms/routers/certificateRoutes"
	courseRoutes "lms/routers/courseRoutes"
	enrollmentRoutes "lms/routers/enrollmentRoutes"
	lessonRoutes "lms/routers/lessonRoutes"
	progressRoutes "lms/routers/progressRoutes"
	quizRoutes "lms/routers/quizRoutes"
	userRoutes "lms/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Envelope mirrors the JSON response envelope used by every handler.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Setup opens an in-memory sqlite database, migrates the schema and installs
// it as the global database instance for the duration of the test.
func Setup(t *testing.T) *gorm.DB {
	t.Helper()

	if config.AppConfig == nil {
		config.AppConfig = &config.Config{
			Port:      "0",
			JWTKey:    "test-secret",
			SaltRound: bcrypt.MinCost,
		}
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// NewApp builds the fiber application with every route mounted.
func NewApp() *fiber.App {
	app := fiber.New()

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)

	return app
}

// CreateUser inserts a user with a bcrypt-hashed password.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password, role string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// TokenFor returns a bearer token for the user.
func TokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

// Request performs an HTTP request against the app and decodes the response
// envelope. The body, when non-nil, is sent as JSON; the token, when
// non-empty, is sent as a bearer credential.
func Request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env Envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}
