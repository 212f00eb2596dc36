package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cyber-learning-system/middleware"

	"github.com/gofiber/fiber/v2"
)

func newAppWithAuth(t *testing.T, token string) *fiber.App {
	t.Helper()
	t.Setenv("LEARNING_SERVICE_TOKEN", token)

	app := fiber.New()
	app.Use(middleware.ServiceAuthMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestServiceAuthDisabledWithoutToken(t *testing.T) {
	app := newAppWithAuth(t, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", resp.StatusCode)
	}
}

func TestServiceAuthRejectsMissingAndBadTokens(t *testing.T) {
	app := newAppWithAuth(t, "sekrit")

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", resp.StatusCode)
	}
}

func TestServiceAuthAcceptsValidToken(t *testing.T) {
	app := newAppWithAuth(t, "sekrit")

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
