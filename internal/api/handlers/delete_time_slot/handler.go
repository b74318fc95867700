package delete_time_slot

import (
	"net/http"

	"github.com/m04kA/SMC-TimeSlotService/internal/api/handlers"
)

const (
	msgInvalidTimeSlotID = "invalid time slot id"
	msgInvalidDeletedBy  = "deletedBy query parameter must be a positive integer"
)

type Handler struct {
	service TimeSlotService
	logger  Logger
}

func NewHandler(service TimeSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/time-slots/{id}?deletedBy={actorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /time-slots/{id} - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	actorID, err := handlers.QueryInt64(r, "deletedBy")
	if err != nil {
		h.logger.Warn("DELETE /time-slots/%d - Invalid deletedBy: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDeletedBy)
		return
	}

	if err := h.service.Delete(r.Context(), id, actorID); err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("DELETE /time-slots/%d - Rejected: actor=%d: %v", id, actorID, err)
			return
		}
		h.logger.Error("DELETE /time-slots/%d - Failed to delete time slot: error=%v", id, err)
		return
	}

	h.logger.Info("DELETE /time-slots/%d - Time slot deleted by actor=%d", id, actorID)
	w.WriteHeader(http.StatusNoContent)
}
