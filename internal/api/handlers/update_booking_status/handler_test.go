package update_booking_status

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titikcuci/booking-service/internal/api/middleware"
	transitionStatus "github.com/titikcuci/booking-service/internal/usecase/transition_status"
)

type fakeUseCase struct {
	err      error
	lastReq  *transitionStatus.Request
	response *transitionStatus.Response
}

func (f *fakeUseCase) Execute(_ context.Context, req *transitionStatus.Request) (*transitionStatus.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)
	return r
}

func patchStatus(t *testing.T, r *mux.Router, path, role string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(raw))
	req.Header.Set(middleware.HeaderUserID, "1")
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpdateBookingStatusHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{response: &transitionStatus.Response{
			ID:            1,
			BookingNumber: "TC-0209202601",
			Status:        "DITERIMA",
			UpdatedAt:     time.Now().UTC(),
		}}
		rec := patchStatus(t, newRouter(uc), "/api/v1/bookings/1/status",
			middleware.RoleAdmin, UpdateStatusRequest{Status: "DITERIMA"})

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, uc.lastReq)
		assert.Equal(t, int64(1), uc.lastReq.BookingID)

		var resp UpdateStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "DITERIMA", resp.Status)
	})

	t.Run("NonStaffForbidden", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := patchStatus(t, newRouter(uc), "/api/v1/bookings/1/status",
			"", UpdateStatusRequest{Status: "DITERIMA"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, uc.lastReq)
	})

	t.Run("SuperAdminAllowed", func(t *testing.T) {
		uc := &fakeUseCase{response: &transitionStatus.Response{Status: "DICUCI"}}
		rec := patchStatus(t, newRouter(uc), "/api/v1/bookings/1/status",
			middleware.RoleSuperAdmin, UpdateStatusRequest{Status: "DICUCI"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("InvalidBookingID", func(t *testing.T) {
		rec := patchStatus(t, newRouter(&fakeUseCase{}), "/api/v1/bookings/abc/status",
			middleware.RoleAdmin, UpdateStatusRequest{Status: "DITERIMA"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotFoundMapsTo404", func(t *testing.T) {
		uc := &fakeUseCase{err: transitionStatus.ErrBookingNotFound}
		rec := patchStatus(t, newRouter(uc), "/api/v1/bookings/1/status",
			middleware.RoleAdmin, UpdateStatusRequest{Status: "DITERIMA"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidStatusMapsTo400", func(t *testing.T) {
		uc := &fakeUseCase{err: transitionStatus.ErrInvalidStatus}
		rec := patchStatus(t, newRouter(uc), "/api/v1/bookings/1/status",
			middleware.RoleAdmin, UpdateStatusRequest{Status: "LOST"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("TransitionNotAllowedMapsTo409", func(t *testing.T) {
		uc := &fakeUseCase{err: transitionStatus.ErrTransitionNotAllowed}
		rec := patchStatus(t, newRouter(uc), "/api/v1/bookings/1/status",
			middleware.RoleAdmin, UpdateStatusRequest{Status: "DITERIMA"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("InternalErrorMapsTo500", func(t *testing.T) {
		uc := &fakeUseCase{err: transitionStatus.ErrInternal}
		rec := patchStatus(t, newRouter(uc), "/api/v1/bookings/1/status",
			middleware.RoleAdmin, UpdateStatusRequest{Status: "DITERIMA"})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
