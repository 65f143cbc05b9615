package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"memoapp/internal/config"
	"memoapp/internal/handlers"
	"memoapp/internal/models"
	"memoapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.AutoMigrate(&models.User{}, &models.Memo{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "integration-secret-0123456789abcdef",
	}

	memoService := services.NewMemoService(db, nil, logger)
	h := handlers.NewHandler(cfg, logger, db, nil, memoService)
	return h.SetupRouter(nil, "../web/templates/*", "")
}

func request(r http.Handler, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Full signup → login → create → list → delete → list round trip.
func TestMemoLifecycle(t *testing.T) {
	r := setupServer(t)

	// Signup
	w := request(r, "POST", "/signup", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "password1",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Login
	w = request(r, "POST", "/login", map[string]string{
		"username": "alice",
		"password": "password1",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	// Create a memo
	w = request(r, "POST", "/memos/", map[string]string{
		"title":   "T",
		"content": "C",
	}, cookies)
	assert.Equal(t, http.StatusCreated, w.Code)

	var memo models.Memo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &memo))
	assert.NotZero(t, memo.ID)
	assert.NotZero(t, memo.UserID)

	// List contains exactly that memo
	w = request(r, "GET", "/memos/", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	var memos []models.Memo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &memos))
	assert.Len(t, memos, 1)
	assert.Equal(t, memo.ID, memos[0].ID)
	assert.Equal(t, "T", memos[0].Title)

	// Delete it
	w = request(r, "DELETE", fmt.Sprintf("/memos/%d", memo.ID), nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	// List is empty again
	w = request(r, "GET", "/memos/", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	memos = nil
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &memos))
	assert.Empty(t, memos)
}

func TestNegativeLogin(t *testing.T) {
	r := setupServer(t)

	w := request(r, "POST", "/signup", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "password1",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	wrong := request(r, "POST", "/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	}, nil)
	unknown := request(r, "POST", "/login", map[string]string{
		"username": "nobody",
		"password": "password1",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}
