package http

import (
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/notification"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler interface {
	ListMine(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{
		notificationService: notificationService,
	}
}

// ListMine implements NotificationHandler.
func (h *NotificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationService.ListMine(r.Context())
	if err != nil {
		slog.Error("List notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}

// MarkRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.notificationService.MarkRead(r.Context(), id); err != nil {
		slog.Error("Mark notification read service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// MarkAllRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationService.MarkAllRead(r.Context()); err != nil {
		slog.Error("Mark all notifications read service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}
