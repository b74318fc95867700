package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-TimeSlotService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-TimeSlotService/internal/usecase/get_available_slots"
)

const msgInvalidUserID = "user_id query parameter must be a positive integer"

type Handler struct {
	useCase AvailableSlotsFinder
	logger  Logger
}

func NewHandler(useCase AvailableSlotsFinder, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-slots/available
// Query params: user_id (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.QueryInt64(r, "user_id")
	if err != nil {
		h.logger.Warn("GET /time-slots/available - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Формат даты проверяет use case: пользователь проверяется раньше даты
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		UserID: userID,
		Date:   date,
	})
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /time-slots/available - Rejected: user_id=%d, date=%q: %v", userID, date, err)
			return
		}
		h.logger.Error("GET /time-slots/available - Failed to get available slots: user_id=%d, error=%v", userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
