package update_time_slot

import (
	"net/http"

	"github.com/m04kA/SMC-TimeSlotService/internal/api/handlers"
)

const msgInvalidTimeSlotID = "invalid time slot id"

type Handler struct {
	useCase UpdateTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/time-slots/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /time-slots/{id} - Invalid time slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeSlotID)
		return
	}

	var req UpdateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /time-slots/%d - Invalid request body: %v", id, err)
		handlers.RespondDecodeError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PATCH /time-slots/%d - Rejected: actor=%d: %v", id, req.CreatedBy, err)
			return
		}
		h.logger.Error("PATCH /time-slots/%d - Failed to update time slot: error=%v", id, err)
		return
	}

	h.logger.Info("PATCH /time-slots/%d - Time slot updated by actor=%d", id, req.CreatedBy)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
