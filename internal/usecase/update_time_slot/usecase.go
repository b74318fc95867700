package update_time_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TimeSlotService/internal/infra/storage/timeslot"
)

const operationName = "update"

// UseCase use case для изменения даты и времени слота
type UseCase struct {
	slotRepo     TimeSlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo TimeSlotRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
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

// Execute выполняет use case изменения слота.
// Владелец слота (user_id) не меняется, created_by становится равным актору.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTimeSlot: id=%d, actor=%d, date=%s, time=%s-%s",
		req.ID, req.ActorID, req.Date, req.StartTime, req.EndTime)

	resp, err := uc.execute(ctx, req)
	uc.metrics.IncTimeSlotOperation(operationName, operationResult(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона времени
	startTime, endTime, err := domain.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("UpdateTimeSlot: invalid time range %s-%s", req.StartTime, req.EndTime)
		return nil, err
	}

	// 2. Новая дата должна быть корректной и не в прошлом
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("UpdateTimeSlot: malformed date %q", req.Date)
		return nil, err
	}
	if domain.IsDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("UpdateTimeSlot: date %s is in the past", date.Format(domain.DateFormat))
		return nil, domain.ErrPastDateBooking
	}

	var result *domain.TimeSlot

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Получаем слот
		slot, err := uc.slotRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrTimeSlotNotFound) {
				uc.logger.Warn("UpdateTimeSlot: slot id=%d not found", req.ID)
				return domain.ErrTimeSlotNotFound
			}
			uc.logger.Error("UpdateTimeSlot: failed to get slot id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		// 4. Проверяем права
		if !slot.CanBeModifiedBy(req.ActorID) {
			uc.logger.Warn("UpdateTimeSlot: actor=%d is not allowed to modify slot id=%d (user=%d, created_by=%d)",
				req.ActorID, slot.ID, slot.UserID, slot.CreatedBy)
			return domain.ErrPermissionDenied
		}

		// 5. Проверяем пересечения с другими бронированиями владельца
		blocked, err := uc.slotRepo.GetBlocked(txCtx, date, slot.UserID)
		if err != nil {
			uc.logger.Error("UpdateTimeSlot: failed to get blocked slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked slots: %w", ErrInternal, err)
		}

		if conflicts := domain.FindOverlapping(startTime, endTime, blocked, slot.ID); len(conflicts) > 0 {
			uc.logger.Warn("UpdateTimeSlot: %s-%s overlaps with slot id=%d (%s-%s)",
				startTime, endTime, conflicts[0].ID, conflicts[0].StartTime, conflicts[0].EndTime)
			return domain.ErrTimeSlotOverlap
		}

		// 6. Сохраняем изменения
		slot.Date = date
		slot.StartTime = startTime
		slot.EndTime = endTime
		slot.CreatedBy = req.ActorID

		if err := uc.slotRepo.Update(txCtx, slot); err != nil {
			if errors.Is(err, slotRepo.ErrTimeSlotNotFound) {
				uc.logger.Warn("UpdateTimeSlot: slot id=%d disappeared before update", req.ID)
				return domain.ErrTimeSlotNotFound
			}
			uc.logger.Error("UpdateTimeSlot: failed to update slot id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update slot: %w", ErrInternal, err)
		}

		result = slot
		return nil
	})

	if err != nil {
		if isDomainError(err) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("UpdateTimeSlot: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.logger.Info("UpdateTimeSlot: updated slot id=%d", result.ID)
	return toResponse(result), nil
}

func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrTimeSlotNotFound) ||
		errors.Is(err, domain.ErrPermissionDenied) ||
		errors.Is(err, domain.ErrTimeSlotOverlap)
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
