package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"apptly/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockMailer struct {
	sendFn func(recipient, subject, body string) error
	sent   []string
}

func (m *mockMailer) Send(recipient, subject, body string) error {
	m.sent = append(m.sent, recipient)
	if m.sendFn != nil {
		return m.sendFn(recipient, subject, body)
	}
	return nil
}

type mockRepo struct {
	records []models.AppointmentRecord
	err     error
}

func (m *mockRepo) Create(_ context.Context, record models.AppointmentRecord) (string, error) {
	m.records = append(m.records, record)
	return record.ID, nil
}

func (m *mockRepo) GetByID(context.Context, string) (*models.AppointmentRecord, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockRepo) GetByKey(context.Context, string, string, string) (*models.AppointmentRecord, error) {
	return nil, fmt.Errorf("not implemented")
}

func (m *mockRepo) List(context.Context) ([]models.AppointmentRecord, error) {
	return m.records, m.err
}

func (m *mockRepo) DeleteByID(context.Context, string) error {
	return fmt.Errorf("not implemented")
}

func newBookingRouter(mailer *mockMailer, repo *mockRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(mailer, repo, "admin@example.com", zap.NewNop())
	r := gin.New()
	r.POST("/api/book-appointment", h.BookAppointment)
	r.GET("/api/admin/appointments", h.ListAppointments)
	return r
}

func validRequestBody() []byte {
	b, _ := json.Marshal(models.AppointmentRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "+977 9812345678",
		Date:    "2026-03-15",
		Time:    "14:30",
		Message: "Looking forward to it",
	})
	return b
}

func TestBookAppointment_Success(t *testing.T) {
	mailer := &mockMailer{}
	router := newBookingRouter(mailer, &mockRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/book-appointment", bytes.NewReader(validRequestBody()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Both parties are notified: customer first, then admin.
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "alice@example.com", mailer.sent[0])
	assert.Equal(t, "admin@example.com", mailer.sent[1])
}

func TestBookAppointment_FailsWhenAnyEmailFails(t *testing.T) {
	cases := []struct {
		name        string
		failingAddr string
	}{
		{"customer email fails", "alice@example.com"},
		{"admin email fails", "admin@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mailer := &mockMailer{
				sendFn: func(recipient, _, _ string) error {
					if recipient == tc.failingAddr {
						return fmt.Errorf("smtp rejected")
					}
					return nil
				},
			}
			router := newBookingRouter(mailer, &mockRepo{})

			req := httptest.NewRequest(http.MethodPost, "/api/book-appointment", bytes.NewReader(validRequestBody()))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), "Failed to send one or more emails.")
		})
	}
}

func TestBookAppointment_RejectsInvalidPayload(t *testing.T) {
	mailer := &mockMailer{}
	router := newBookingRouter(mailer, &mockRepo{})

	payload := []byte(`{"name":"Alice","email":"not-an-email","phone":"98123456789","date":"2026-03-15","time":"14:30","message":"hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/book-appointment", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestListAppointments(t *testing.T) {
	repo := &mockRepo{records: []models.AppointmentRecord{{ID: "r1", Name: "Alice"}}}
	router := newBookingRouter(&mockMailer{}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/appointments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Alice"`)
}
