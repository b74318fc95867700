package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
)

// UseCase use case для получения свободных слотов пользователя на дату
type UseCase struct {
	slotRepo     TimeSlotRepository
	userProvider UserProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo TimeSlotRepository,
	userProvider UserProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		userProvider: userProvider,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, date=%s", req.UserID, req.Date)

	// 1. Проверяем существование пользователя
	exists, err := uc.userProvider.Exists(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to check user: %w", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("GetAvailableSlots: user id=%d not found", req.UserID)
		return nil, domain.ErrUserNotFound
	}

	// 2. Дата должна быть корректной и не в прошлом
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: malformed date %q", req.Date)
		return nil, domain.ErrInvalidDate
	}
	if !domain.IsTodayOrFuture(date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date)
		return nil, domain.ErrInvalidDate
	}

	// 3. Сетка слотов дня
	grid := domain.GenerateGrid(date, req.UserID)

	// 4. Забронированные слоты
	blocked, err := uc.slotRepo.GetBlocked(ctx, date, req.UserID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %w", ErrInternal, err)
	}

	// 5. Оставляем слоты сетки без пересечений
	available := domain.FilterAvailable(grid, blocked)

	slots := make([]Slot, 0, len(available))
	for _, s := range available {
		slots = append(slots, Slot{StartTime: s.StartTime, EndTime: s.EndTime})
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for user=%d on %s",
		len(slots), len(grid), req.UserID, req.Date)

	return &Response{
		Date:   date,
		UserID: req.UserID,
		Slots:  slots,
	}, nil
}
