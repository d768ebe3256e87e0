package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// TestConfig returns a configuration pointing at a private in-memory sqlite database
func TestConfig() *config.Config {
	return &config.Config{
		DatabaseURL:    ":memory:",
		DBDriver:       config.DriverSQLite,
		Port:           "8080",
		GoEnv:          "test",
		AllowedOrigins: []string{"http://localhost:5173"},
		AWSRegion:      "us-east-1",
		UploadDir:      os.TempDir(),
		LogLevel:       "silent",
	}
}

// NewTestDB opens a fresh migrated in-memory database and installs it as the shared handle
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase(TestConfig())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	config.SetDB(db)
	return db
}

// Envelope is the decoded API response wrapper
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
		Count   int64  `json:"count"`
	} `json:"error"`
}

// ErrorCode returns the error code or an empty string on success
func (e Envelope) ErrorCode() string {
	if e.Error == nil {
		return ""
	}
	return e.Error.Code
}

// Request sends a JSON request straight to the handler
func Request(t testing.TB, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// Decode parses an envelope and, when out is non-nil, its data payload
func Decode(t testing.TB, body []byte, out interface{}) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out), string(env.Data))
	}
	return env
}
