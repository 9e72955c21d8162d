package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/db"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "strand-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key-for-handler-tests", time.UTC, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler, database
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func performJSONRequest(t *testing.T, app *fiber.App, method string, target string, payload any, authCookie string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookieName+"="+authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return response
}

func decodeEnvelope(t *testing.T, response *http.Response, data any) apiEnvelope {
	t.Helper()

	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	envelope := apiEnvelope{}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode envelope from %q: %v", string(raw), err)
	}
	if data != nil {
		if err := json.Unmarshal(envelope.Data, data); err != nil {
			t.Fatalf("decode envelope data from %q: %v", string(envelope.Data), err)
		}
	}
	return envelope
}

func uintToString(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

type registeredTestUser struct {
	UserID       uint
	Email        string
	Password     string
	RecoveryCode string
	AuthCookie   string
}

func registerTestUser(t *testing.T, app *fiber.App, email string) registeredTestUser {
	t.Helper()

	const password = "StrongPass1"
	response := performJSONRequest(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    email,
		"password": password,
	}, "")

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", response.StatusCode)
	}

	authCookie := responseCookieValue(response.Cookies(), authCookieName)
	if authCookie == "" {
		t.Fatalf("register response missing auth cookie")
	}

	var data struct {
		UserID       uint   `json:"user_id"`
		RecoveryCode string `json:"recovery_code"`
	}
	envelope := decodeEnvelope(t, response, &data)
	if !envelope.Success {
		t.Fatalf("register envelope not successful")
	}
	if data.RecoveryCode == "" {
		t.Fatalf("register response missing recovery code")
	}

	return registeredTestUser{
		UserID:       data.UserID,
		Email:        email,
		Password:     password,
		RecoveryCode: data.RecoveryCode,
		AuthCookie:   authCookie,
	}
}
