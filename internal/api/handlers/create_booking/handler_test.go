package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bossbaby/BBS-BookingService/internal/api/middleware"
	"github.com/bossbaby/BBS-BookingService/internal/auth"
	createBooking "github.com/bossbaby/BBS-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type fakeSessionProvider struct {
	session *auth.Session
}

func (f *fakeSessionProvider) GetSession(*http.Request) (*auth.Session, bool) {
	return f.session, f.session != nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"babyName": "Aarav",
	"babyAge": 6,
	"photoType": "newborn",
	"bookingDate": "2026-01-17",
	"timeSlot": "11:00"
}`

func doRequest(uc CreateBookingUseCase, session *auth.Session, body string) *httptest.ResponseRecorder {
	handler := NewHandler(uc, noopLogger{})
	wrapped := middleware.Session(&fakeSessionProvider{session: session})(http.HandlerFunc(handler.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              42,
		UserID:          7,
		BabyName:        "Aarav",
		BabyAge:         6,
		MobileNo:        "9876543210",
		PhotoType:       "newborn",
		Date:            time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "11:00",
		DurationMinutes: 30,
		CreatedAt:       time.Now(),
	}}

	w := doRequest(uc, &auth.Session{UserID: 7}, validBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	assert.Contains(t, w.Body.String(), `"mobileNo":"9876543210"`)

	// Владелец берётся из сессии
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(7), uc.gotReq.UserID)
}

func TestHandle_NoSession(t *testing.T) {
	w := doRequest(&fakeUseCase{}, nil, validBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	w := doRequest(&fakeUseCase{}, &auth.Session{UserID: 7}, `{"babyName": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := strings.Replace(validBody, "2026-01-17", "17-01-2026", 1)
	w := doRequest(&fakeUseCase{}, &auth.Session{UserID: 7}, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot taken", err: createBooking.ErrSlotTaken, wantStatus: http.StatusConflict},
		{name: "studio closed", err: createBooking.ErrStudioClosed, wantStatus: http.StatusBadRequest},
		{name: "past date", err: createBooking.ErrPastDate, wantStatus: http.StatusBadRequest},
		{name: "past time", err: createBooking.ErrPastTime, wantStatus: http.StatusBadRequest},
		{name: "invalid slot", err: createBooking.ErrInvalidSlot, wantStatus: http.StatusBadRequest},
		{name: "user not found", err: createBooking.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(&fakeUseCase{err: tt.err}, &auth.Session{UserID: 7}, validBody)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandle_ValidationErrorsPerField(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ValidationErrors{
		{Field: "babyName", Message: "baby name is required"},
		{Field: "photoType", Message: "please select a valid photo type"},
	}}

	w := doRequest(uc, &auth.Session{UserID: 7}, validBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"babyName":"baby name is required"`)
	assert.Contains(t, w.Body.String(), `"photoType"`)
}
