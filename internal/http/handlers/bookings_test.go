package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "busbooking/internal/config"
	api "busbooking/internal/http"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	intconfig.DB = db

	r := api.NewRouter(intconfig.Env{JWTSecret: testSecret})
	return r, mock, func() {
		intconfig.DB = nil
		db.Close()
	}
}

func tokenFor(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestBookSeatReturnsCreatedBooking(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectExec("UPDATE seats SET is_booked = 1").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, bus_id, seat_number, is_booked").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bus_id", "seat_number", "is_booked"}).
			AddRow(7, 3, "7", true))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(1), int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(21, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"seat_id":7}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":21`)
	assert.Contains(t, w.Body.String(), `"is_paid":false`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookSeatAlreadyBookedAnswers400(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectExec("UPDATE seats SET is_booked = 1").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"seat_id":7}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 2))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "seat already booked")
}

func TestBookSeatUnknownSeatAnswers400(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectExec("UPDATE seats SET is_booked = 1").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"seat_id":404}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid seat id")
}

func TestBookSeatRequiresAuth(t *testing.T) {
	r, _, done := newTestRouter(t)
	defer done()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"seat_id":7}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserBookingsRejectsOtherUser(t *testing.T) {
	r, _, done := newTestRouter(t)
	defer done()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/2/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserBookingsReturnsOwnList(t *testing.T) {
	r, mock, done := newTestRouter(t)
	defer done()

	mock.ExpectQuery("SELECT id, user_id, bus_id, seat_id, is_paid").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "bus_id", "seat_id", "is_paid", "created_at"}).
			AddRow(21, 1, 3, 7, false, "2026-01-01 09:00:00"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, 1))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"seat_id":7`)
}
