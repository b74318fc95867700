package get_time_slot

import (
	"net/http"

	"github.com/m04kA/SMC-TimeSlotService/internal/api/handlers"
)

const msgInvalidTimeSlotID = "invalid time slot id"

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

// Handle GET /api/v1/time-slots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /time-slots/{id} - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	slot, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /time-slots/%d - Not found", id)
			return
		}
		h.logger.Error("GET /time-slots/%d - Failed to get time slot: error=%v", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slot)
}
