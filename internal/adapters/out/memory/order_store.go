package memory

import (
	"context"
	"fmt"
	"sync"

	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/pkg/errs"
)

// OrderStore implements ports.OrderStore backed by process memory.
// Orders are kept in submission order, which is what makes the
// first-ready claim scan deterministic.
type OrderStore struct {
	mu     sync.Mutex
	orders []*order.Order
	byID   map[string]*order.Order
	// settled is the length of the fully claimed prefix; claim scans
	// start after it because claimed orders never become claimable again
	settled int
}

// NewOrderStore creates an empty in-memory order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{
		byID: make(map[string]*order.Order),
	}
}

// Add saves a new order to the store.
func (s *OrderStore) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid",
			fmt.Errorf("order %s already exists", aggregate.ID()))
	}

	s.orders = append(s.orders, aggregate)
	s.byID[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves an order by ID.
func (s *OrderStore) Get(_ context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	aggregate, ok := s.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return aggregate, nil
}

// All retrieves every stored order in submission order.
func (s *OrderStore) All(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*order.Order, len(s.orders))
	copy(snapshot, s.orders)
	return snapshot, nil
}

// Count returns the number of stored orders.
func (s *OrderStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.orders), nil
}

// CountByStatus returns the number of stored orders in the given status.
func (s *OrderStore) CountByStatus(_ context.Context, status order.Status) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, aggregate := range s.orders {
		if aggregate.Status() == status {
			count++
		}
	}
	return count, nil
}

// CountClaimed returns the number of stored orders already claimed by a courier.
func (s *OrderStore) CountClaimed(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, aggregate := range s.orders {
		if aggregate.IsClaimed() {
			count++
		}
	}
	return count, nil
}

// ClaimFirstReady claims the first order in submission order that is ready
// and unclaimed, recording the given courier as its claimant. The whole
// scan-and-claim runs under the store lock, so concurrent claimers can
// never claim the same order.
func (s *OrderStore) ClaimFirstReady(_ context.Context, courierID int) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.settled < len(s.orders) && s.orders[s.settled].IsClaimed() {
		s.settled++
	}

	for _, aggregate := range s.orders[s.settled:] {
		if !aggregate.IsReady() || aggregate.IsClaimed() {
			continue
		}
		if err := aggregate.Claim(courierID); err != nil {
			continue
		}
		return aggregate, true
	}

	return nil, false
}
