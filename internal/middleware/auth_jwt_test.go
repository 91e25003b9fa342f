package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "test-secret"

func authApp(t *testing.T, calls *int) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(RequireAuth(testSecret))
	app.Get("/profile", func(c *fiber.Ctx) error {
		*calls++
		uid, err := UserID(c)
		if err != nil {
			t.Fatalf("UserID after valid auth: %v", err)
		}
		return c.JSON(fiber.Map{"id": uid.Hex()})
	})
	return app
}

func bodyMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return payload.Message
}

func TestRequireAuthMissingHeader(t *testing.T) {
	calls := 0
	app := authApp(t, &calls)

	req := httptest.NewRequest("GET", "/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if msg := bodyMessage(t, resp.Body); msg != "Unauthorized" {
		t.Fatalf("expected message %q, got %q", "Unauthorized", msg)
	}
	if calls != 0 {
		t.Fatalf("downstream handler invoked %d times", calls)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": bson.NewObjectID().Hex(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signedWithWrongKey, err := wrongKey.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatal(err)
	}

	for _, token := range []string{"not-a-jwt", signedWithWrongKey} {
		calls := 0
		app := authApp(t, &calls)

		req := httptest.NewRequest("GET", "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", resp.StatusCode)
		}
		if msg := bodyMessage(t, resp.Body); msg != "Invalid token" {
			t.Fatalf("expected message %q, got %q", "Invalid token", msg)
		}
		if calls != 0 {
			t.Fatalf("downstream handler invoked %d times", calls)
		}
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	uid := bson.NewObjectID()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid.Hex(),
		"sub": uid.Hex(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	app := authApp(t, &calls)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if calls != 1 {
		t.Fatalf("downstream handler invoked %d times, want exactly once", calls)
	}
}
