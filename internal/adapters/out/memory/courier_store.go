// Package memory provides in-memory implementations of the store ports.
// A simulation run lives and dies inside one process, so the stores keep
// aggregates in slices guarded by mutexes instead of reaching for a
// database.
package memory

import (
	"context"
	"fmt"
	"sync"

	"dispatchsim/internal/core/domain/model/courier"
	"dispatchsim/internal/pkg/errs"
)

// CourierStore implements ports.CourierStore backed by process memory.
// Couriers are kept in dispatch order and numbered by an internal
// sequence starting at 1.
type CourierStore struct {
	mu       sync.Mutex
	couriers []*courier.Courier
	byID     map[int]*courier.Courier
	lastID   int
}

// NewCourierStore creates an empty in-memory courier store.
func NewCourierStore() *CourierStore {
	return &CourierStore{
		byID: make(map[int]*courier.Courier),
	}
}

// NextID reserves and returns the next courier identifier.
func (s *CourierStore) NextID(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	return s.lastID, nil
}

// Add saves a new courier to the store.
func (s *CourierStore) Add(_ context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("courier id is invalid",
			fmt.Errorf("courier %d already exists", aggregate.ID()))
	}

	s.couriers = append(s.couriers, aggregate)
	s.byID[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves a courier by ID.
func (s *CourierStore) Get(_ context.Context, id int) (*courier.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aggregate, ok := s.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courier", id)
	}

	return aggregate, nil
}

// All retrieves every stored courier in dispatch order.
func (s *CourierStore) All(_ context.Context) ([]*courier.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*courier.Courier, len(s.couriers))
	copy(snapshot, s.couriers)
	return snapshot, nil
}

// Count returns the number of stored couriers.
func (s *CourierStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.couriers), nil
}
