package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harshitgawli/Turf-Booking/internal/config"
	"github.com/harshitgawli/Turf-Booking/internal/mailer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type otpStub struct {
	code      string
	issueErr  error
	verifyOK  bool
	verifyErr error
	issued    []string
}

func (s *otpStub) Issue(ctx context.Context, email string) (string, error) {
	s.issued = append(s.issued, email)
	if s.issueErr != nil {
		return "", s.issueErr
	}
	return s.code, nil
}

func (s *otpStub) Verify(ctx context.Context, email, code string) (bool, error) {
	return s.verifyOK, s.verifyErr
}

type mailCapture struct {
	sent []mailer.Message
}

func (m *mailCapture) Dispatch(msg mailer.Message) {
	m.sent = append(m.sent, msg)
}

func newAuthTestHandler(t *testing.T, otps *otpStub) (*AuthHandler, sqlmock.Sqlmock, *mailCapture) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)

	mail := &mailCapture{}
	h := NewAuthHandler(gdb, &config.Config{JWTSecret: "test-secret"}, otps, mail)
	h.validateEmail = func(string) bool { return true }

	return h, mock, mail
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{"name":"Asha","email":"asha@example.com","mobile":"9876543210","password":"secret1"}`

func TestRegister(t *testing.T) {
	otps := &otpStub{code: "123456"}
	h, mock, mail := newAuthTestHandler(t, otps)

	r := gin.New()
	r.POST("/register", h.Register)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := postJSON(r, "/register", registerBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"asha@example.com"}, otps.issued)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "asha@example.com", mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Body, "123456")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterOTPFailureWritesSingleResponse(t *testing.T) {
	otps := &otpStub{issueErr: errors.New("store unavailable")}
	h, mock, mail := newAuthTestHandler(t, otps)

	r := gin.New()
	r.POST("/register", h.Register)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := postJSON(r, "/register", registerBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// exactly one JSON document on the wire, never 500 + 201 concatenated
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "failed_to_issue_otp", body["error"])
	assert.NotContains(t, w.Body.String(), "Registered")

	assert.Empty(t, mail.sent)
}

func TestRegisterDuplicateCheckStorageError(t *testing.T) {
	h, mock, _ := newAuthTestHandler(t, &otpStub{code: "123456"})

	r := gin.New()
	r.POST("/register", h.Register)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("connection reset"))

	w := postJSON(r, "/register", registerBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")

	// no create attempt after a failed duplicate check
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	otps := &otpStub{code: "123456"}
	h, mock, _ := newAuthTestHandler(t, otps)

	r := gin.New()
	r.POST("/register", h.Register)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := postJSON(r, "/register", registerBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email_already_registered")
	assert.Empty(t, otps.issued)
}

func TestVerifyOTP(t *testing.T) {
	h, mock, _ := newAuthTestHandler(t, &otpStub{verifyOK: true})

	r := gin.New()
	r.POST("/verify-otp", h.VerifyOTP)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := postJSON(r, "/verify-otp", `{"email":"asha@example.com","otp":"123456"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email verified")
}

func TestVerifyOTPUnknownEmail(t *testing.T) {
	h, mock, _ := newAuthTestHandler(t, &otpStub{verifyOK: true})

	r := gin.New()
	r.POST("/verify-otp", h.VerifyOTP)

	// valid code but no user row: the update touches nothing
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := postJSON(r, "/verify-otp", `{"email":"ghost@example.com","otp":"123456"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user_not_found")
}

func TestVerifyOTPWrongCode(t *testing.T) {
	h, _, _ := newAuthTestHandler(t, &otpStub{verifyOK: false})

	r := gin.New()
	r.POST("/verify-otp", h.VerifyOTP)

	w := postJSON(r, "/verify-otp", `{"email":"asha@example.com","otp":"000000"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_or_expired_otp")
}
