package adapters

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/labstack/echo/v4"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGinHandler(t *testing.T) {
	engine := gin.New()
	MountGin(engine, "/openapi.json", testDoc{})

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentTypeJSON {
		t.Errorf("Expected content type %s, got %s", ContentTypeJSON, got)
	}
	if !strings.Contains(rec.Body.String(), `"operationId": "Ping"`) {
		t.Errorf("Expected JSON body, got %s", rec.Body.String())
	}
}

func TestEchoHandler(t *testing.T) {
	e := echo.New()
	MountEcho(e, "/openapi", testDoc{})

	req := httptest.NewRequest(http.MethodGet, "/openapi?format=yaml", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentTypeYAML {
		t.Errorf("Expected content type %s, got %s", ContentTypeYAML, got)
	}
	if !strings.Contains(rec.Body.String(), "openapi: 3.0.3") {
		t.Errorf("Expected YAML body, got %s", rec.Body.String())
	}
}

func TestFiberHandler(t *testing.T) {
	app := fiber.New()
	MountFiber(app, "/openapi", testDoc{})

	req := httptest.NewRequest(http.MethodGet, "/openapi", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to test request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != ContentTypeJSON {
		t.Errorf("Expected content type %s, got %s", ContentTypeJSON, got)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if !strings.Contains(string(body), `"title": "Test"`) {
		t.Errorf("Expected JSON body, got %s", body)
	}
}
