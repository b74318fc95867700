package timeslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TimeSlotService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-TimeSlotService/internal/service/timeslots/models"
)

// Service сервис для чтения и удаления слотов
type Service struct {
	slotRepo  TimeSlotRepository
	txManager TransactionManager
	metrics   MetricsRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo TimeSlotRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TimeSlotResponse, error) {
	s.logger.Info("GetByID: fetching slot id=%d", id)

	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrTimeSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, domain.ErrTimeSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainTimeSlot(slot), nil
}

// Delete удаляет слот. Удалять может создатель или владелец слота.
func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("Delete: slot id=%d, actor=%d", id, actorID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, slotRepo.ErrTimeSlotNotFound) {
				s.logger.Warn("Delete: slot id=%d not found", id)
				return domain.ErrTimeSlotNotFound
			}
			s.logger.Error("Delete: failed to get slot id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - get slot: %w", ErrInternal, err)
		}

		if !slot.CanBeModifiedBy(actorID) {
			s.logger.Warn("Delete: actor=%d is not allowed to delete slot id=%d", actorID, id)
			return domain.ErrPermissionDenied
		}

		if err := s.slotRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, slotRepo.ErrTimeSlotNotFound) {
				s.logger.Warn("Delete: slot id=%d already deleted", id)
				return domain.ErrTimeSlotNotFound
			}
			s.logger.Error("Delete: failed to delete slot id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - delete slot: %w", ErrInternal, err)
		}

		return nil
	})

	s.metrics.IncTimeSlotOperation("delete", operationResult(err))

	if err != nil {
		if errors.Is(err, domain.ErrTimeSlotNotFound) ||
			errors.Is(err, domain.ErrPermissionDenied) ||
			errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: Delete - transaction failed: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: slot id=%d deleted", id)
	return nil
}

func operationResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrTimeSlotNotFound), errors.Is(err, domain.ErrPermissionDenied):
		return "rejected"
	default:
		return "error"
	}
}
