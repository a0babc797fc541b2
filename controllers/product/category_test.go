package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/storage"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

// A category that still has products must survive the delete attempt: 409,
// and no DELETE ever reaches the database.
func TestDeleteCategoryWithProductsIsRefused(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "e_name", "ar_name", "image"}).
			AddRow(3, "Mugs", "أكواب", "/uploads/categories/mugs.jpg"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	store := storage.New(t.TempDir(), "/uploads")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/categories/:id", DeleteCategory(db, store, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/categories/3", nil))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "still has products") {
		t.Fatalf("body = %s, want has-products error", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Soft-deleting a product keeps its image on disk; placed orders still
// reference the URL.
func TestDeleteProductKeepsImageForOrderHistory(t *testing.T) {
	db, mock := newMockDB(t)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, storage.BucketProducts), 0o755); err != nil {
		t.Fatal(err)
	}
	imagePath := filepath.Join(dir, storage.BucketProducts, "mug.jpg")
	if err := os.WriteFile(imagePath, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "e_name", "image"}).
			AddRow(8, "Mug", "/uploads/products/mug.jpg"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	store := storage.New(dir, "/uploads")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/products/:id", DeleteProduct(db, store, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/products/8", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(imagePath); err != nil {
		t.Fatalf("image should survive a product soft delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
