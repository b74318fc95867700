package create_time_slot

import (
	"net/http"

	"github.com/m04kA/SMC-TimeSlotService/internal/api/handlers"
)

type Handler struct {
	useCase TimeSlotBooker
	logger  Logger
}

func NewHandler(useCase TimeSlotBooker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-slots - Invalid request body: %v", err)
		handlers.RespondDecodeError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /time-slots - Rejected: user_id=%d, date=%s, %s-%s: %v",
				req.UserID, req.Date, req.StartTime, req.EndTime, err)
			return
		}
		h.logger.Error("POST /time-slots - Failed to create time slot: user_id=%d, error=%v", req.UserID, err)
		return
	}

	h.logger.Info("POST /time-slots - Time slot created: id=%d, user_id=%d", result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
