package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/johnaymann1/st-mary-gifts-api/auth"
	"github.com/johnaymann1/st-mary-gifts-api/models"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireAuth, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/admin", RequireAuth, RequireAdmin, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	protectedRouter().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	protectedRouter().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := auth.IssueJWT("user-42", "someone@example.com", models.RoleUser)
	if token == "" {
		t.Fatal("IssueJWT returned an empty token")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestRequireAdminBlocksRegularUsers(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := auth.IssueJWT("user-42", "someone@example.com", models.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter().ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := auth.IssueJWT("admin-1", "admin@example.com", models.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
