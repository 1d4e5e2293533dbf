package get_notifications

import (
	"net/http"

	"github.com/titikcuci/booking-service/internal/api/handlers"
	"github.com/titikcuci/booking-service/internal/api/middleware"
)

const msgMissingUserID = "ID pengguna tidak ditemukan"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Listed %d notifications: user_id=%d", len(list.Notifications), userID)
	handlers.RespondJSON(w, http.StatusOK, list)
}
