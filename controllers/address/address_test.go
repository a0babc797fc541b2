package addresscontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/johnaymann1/st-mary-gifts-api/models"
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

func addressRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", models.RoleUser)
	}
	r.POST("/addresses", auth, CreateAddress(db))
	r.PUT("/addresses/:id", auth, UpdateAddress(db))
	return r
}

// Creating a default address must clear every other default for the user
// inside the same transaction, before the insert.
func TestCreateDefaultAddressClearsOthers(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "saved_addresses" SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`INSERT INTO "saved_addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	r := addressRouter(db)
	body := `{"label":"Home","address":"12 Church St","is_default":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// A non-default create must not touch the other addresses at all.
func TestCreateAddressWithoutDefaultLeavesOthersAlone(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "saved_addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
	mock.ExpectCommit()

	r := addressRouter(db)
	body := `{"label":"Work","address":"3 Market Sq","is_default":false}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Promoting an existing address to default clears the old default first.
func TestUpdateAddressPromoteClearsOldDefault(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM "saved_addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "label", "address", "is_default"}).
			AddRow(4, "user-1", "Home", "12 Church St", false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "saved_addresses" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "saved_addresses"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := addressRouter(db)
	body := `{"label":"Home","address":"12 Church St","is_default":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/addresses/4", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
