// Package testutil содержит in-memory реализации зависимостей use case для тестов
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-TimeSlotService/internal/domain"
	"github.com/m04kA/SMC-TimeSlotService/internal/infra/storage/timeslot"
)

// SlotStore хранилище слотов в памяти с семантикой timeslot.Repository
type SlotStore struct {
	mu     sync.Mutex
	slots  map[int64]*domain.TimeSlot
	nextID int64
	writes int
}

func NewSlotStore() *SlotStore {
	return &SlotStore{slots: make(map[int64]*domain.TimeSlot)}
}

// Writes количество успешных записей (create, update, delete)
func (s *SlotStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *SlotStore) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, timeslot.ErrTimeSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

func (s *SlotStore) GetBlocked(_ context.Context, date time.Time, userID int64) ([]*domain.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := domain.DateOnly(date)
	result := make([]*domain.TimeSlot, 0)
	for _, slot := range s.slots {
		if slot.IsBlocked && slot.UserID == userID && slot.Date.Equal(day) {
			copied := *slot
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})
	return result, nil
}

func (s *SlotStore) Create(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now()

	stored := *slot
	stored.ID = s.nextID
	stored.Date = domain.DateOnly(slot.Date)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.slots[stored.ID] = &stored
	s.writes++

	result := stored
	return &result, nil
}

func (s *SlotStore) Update(_ context.Context, slot *domain.TimeSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.slots[slot.ID]
	if !ok {
		return timeslot.ErrTimeSlotNotFound
	}
	stored.Date = domain.DateOnly(slot.Date)
	stored.StartTime = slot.StartTime
	stored.EndTime = slot.EndTime
	stored.CreatedBy = slot.CreatedBy
	stored.UpdatedAt = time.Now()
	slot.UpdatedAt = stored.UpdatedAt
	s.writes++
	return nil
}

func (s *SlotStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[id]; !ok {
		return timeslot.ErrTimeSlotNotFound
	}
	delete(s.slots, id)
	s.writes++
	return nil
}

// Users набор существующих пользователей
type Users map[int64]bool

func (u Users) Exists(_ context.Context, userID int64) (bool, error) {
	return u[userID], nil
}

// TxManager выполняет функцию сразу, без транзакции
type TxManager struct{}

func (TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Clock фиксированное текущее время
type Clock struct {
	T time.Time
}

func (c Clock) Now() time.Time {
	return c.T
}

// Metrics запоминает учтённые операции в виде "operation:result"
type Metrics struct {
	mu    sync.Mutex
	Calls []string
}

func (m *Metrics) IncTimeSlotOperation(operation, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, operation+":"+result)
}

// Logger ничего не пишет
type Logger struct{}

func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
