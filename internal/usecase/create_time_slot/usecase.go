package create_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
)

const operationName = "create"

// UseCase use case для бронирования слота
type UseCase struct {
	slotRepo     TimeSlotRepository
	userProvider UserProvider
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo TimeSlotRepository,
	userProvider UserProvider,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		userProvider: userProvider,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case бронирования слота.
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTimeSlot: user=%d, created_by=%d, date=%s, time=%s-%s",
		req.UserID, req.CreatedBy, req.Date, req.StartTime, req.EndTime)

	resp, err := uc.execute(ctx, req)
	uc.metrics.IncTimeSlotOperation(operationName, operationResult(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона времени
	startTime, endTime, err := domain.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateTimeSlot: invalid time range %s-%s", req.StartTime, req.EndTime)
		return nil, err
	}

	// 2. Проверяем существование пользователя
	exists, err := uc.userProvider.Exists(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("CreateTimeSlot: failed to check user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to check user: %w", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateTimeSlot: user id=%d not found", req.UserID)
		return nil, domain.ErrUserNotFound
	}

	// 3. Дата должна быть корректной и не в прошлом
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("CreateTimeSlot: malformed date %q", req.Date)
		return nil, err
	}
	if domain.IsDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateTimeSlot: date %s is in the past", date.Format(domain.DateFormat))
		return nil, domain.ErrPastDateBooking
	}

	var result *domain.TimeSlot

	// 4. Проверка пересечений и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		blocked, err := uc.slotRepo.GetBlocked(txCtx, date, req.UserID)
		if err != nil {
			uc.logger.Error("CreateTimeSlot: failed to get blocked slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked slots: %w", ErrInternal, err)
		}

		if conflicts := domain.FindOverlapping(startTime, endTime, blocked, 0); len(conflicts) > 0 {
			uc.logger.Warn("CreateTimeSlot: %s-%s overlaps with slot id=%d (%s-%s)",
				startTime, endTime, conflicts[0].ID, conflicts[0].StartTime, conflicts[0].EndTime)
			return domain.ErrTimeSlotOverlap
		}

		created, err := uc.slotRepo.Create(txCtx, &domain.TimeSlot{
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
			IsBlocked: true,
			UserID:    req.UserID,
			CreatedBy: req.CreatedBy,
		})
		if err != nil {
			uc.logger.Error("CreateTimeSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrTimeSlotOverlap) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateTimeSlot: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateTimeSlot: created slot id=%d", result.ID)
	return toResponse(result), nil
}

func operationResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInternal):
		return "error"
	default:
		return "rejected"
	}
}
