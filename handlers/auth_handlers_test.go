package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"app/config"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.OperatorEmail = "op@example.com"
	config.AppConfig.OperatorPassHash = string(hash)

	app := fiber.New()
	app.Post("/login", HandleLogin)
	return app
}

func login(app *fiber.App, body string) int {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)
	return resp.StatusCode
}

func TestLoginSuccess(t *testing.T) {
	app := newAuthApp(t)
	assert.Equal(t, 200, login(app, `{"email":"op@example.com","password":"secret-pass"}`))
}

func TestLoginWrongPassword(t *testing.T) {
	app := newAuthApp(t)
	assert.Equal(t, 401, login(app, `{"email":"op@example.com","password":"wrong"}`))
}

func TestLoginUnknownEmail(t *testing.T) {
	app := newAuthApp(t)
	assert.Equal(t, 401, login(app, `{"email":"nobody@example.com","password":"secret-pass"}`))
}

func TestLoginMissingFields(t *testing.T) {
	app := newAuthApp(t)
	assert.Equal(t, 400, login(app, `{}`))
}
