package commands

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"dispatchsim/internal/core/domain/model/courier"
	"dispatchsim/internal/core/domain/model/order"
	"dispatchsim/internal/core/domain/model/stats"
	"dispatchsim/internal/core/domain/services"
	"dispatchsim/internal/core/ports"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Stores the order, dispatches its courier synchronously, then starts the
// two concurrent halves of the pairing: the preparation timer and the
// courier escort.
//
// The synchronous part keeps the courier creation (and with it the travel
// time draw) on the submission path, so a fixed seed reproduces the same
// draws for the same input. The concurrent part runs until the pairing
// completes; the shared wait group tracks every spawned goroutine, and the
// submission driver blocks on it for run completion.
//
// Errors inside the goroutines are logged and abandon that pairing; there
// are no retries.
type SubmitOrderCommandHandler struct {
	orders  ports.OrderStore
	policy  services.DispatchPolicy
	matcher *services.Matcher
	ledger  *stats.Ledger
	wg      *sync.WaitGroup
	logger  *zap.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order submission operations.
// The wait group is shared with the submission driver, which waits on it
// after the last submission.
func NewSubmitOrderCommandHandler(
	orders ports.OrderStore,
	policy services.DispatchPolicy,
	matcher *services.Matcher,
	ledger *stats.Ledger,
	wg *sync.WaitGroup,
	logger *zap.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		orders:  orders,
		policy:  policy,
		matcher: matcher,
		ledger:  ledger,
		wg:      wg,
		logger:  logger.With(zap.String("component", "dispatch")),
	}
}

// Handle processes the order submission command.
// Creates and stores the order, dispatches the courier, and spawns the
// preparation and escort goroutines. Returns before the pairing completes;
// only submission-time failures are reported here.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	submitted, err := order.NewOrder(cmd.OrderID(), cmd.Name(), cmd.PrepDuration())
	if err != nil {
		return err
	}

	if err = h.orders.Add(ctx, submitted); err != nil {
		return err
	}

	dispatched, err := h.policy.Dispatch(ctx, submitted)
	if err != nil {
		return err
	}

	pickup := "the next order"
	if dispatched.IsBound() {
		pickup = dispatched.Bound().String()
	}
	h.logger.Info("Courier dispatched",
		zap.String("courier", dispatched.String()),
		zap.Duration("arrives_in", dispatched.TravelTime()),
		zap.String("to_pick_up", pickup),
	)

	h.wg.Add(2)
	go h.prepare(ctx, submitted)
	go h.escort(ctx, dispatched)

	return nil
}

// prepare runs the order's preparation timer and marks it ready.
func (h *SubmitOrderCommandHandler) prepare(ctx context.Context, submitted *order.Order) {
	defer h.wg.Done()

	h.logger.Info("Preparing",
		zap.String("order", submitted.String()),
		zap.Duration("prep_time", submitted.PrepDuration()),
	)

	if err := sleepFor(ctx, submitted.PrepDuration()); err != nil {
		h.logger.Warn("Preparation interrupted",
			zap.String("order", submitted.String()),
			zap.Error(err),
		)
		return
	}

	if err := submitted.MarkReady(time.Now()); err != nil {
		h.logger.Error("Marking order ready failed",
			zap.String("order", submitted.String()),
			zap.Error(err),
		)
		return
	}

	h.logger.Info("Ready for courier", zap.String("order", submitted.String()))
}

// escort runs the courier's travel timer and the pickup workflow.
func (h *SubmitOrderCommandHandler) escort(ctx context.Context, dispatched *courier.Courier) {
	defer h.wg.Done()

	if err := sleepFor(ctx, dispatched.TravelTime()); err != nil {
		h.logger.Warn("Travel interrupted",
			zap.String("courier", dispatched.String()),
			zap.Error(err),
		)
		return
	}

	if err := dispatched.MarkArrived(time.Now()); err != nil {
		h.logger.Error("Marking courier arrived failed",
			zap.String("courier", dispatched.String()),
			zap.Error(err),
		)
		return
	}

	h.logger.Info("Courier arrived", zap.String("courier", dispatched.String()))

	if err := dispatched.StartWaiting(); err != nil {
		h.logger.Error("Courier cannot start waiting",
			zap.String("courier", dispatched.String()),
			zap.Error(err),
		)
		return
	}

	picked, err := h.awaitPickup(ctx, dispatched)
	if err != nil {
		h.logger.Warn("Pickup abandoned",
			zap.String("courier", dispatched.String()),
			zap.Error(err),
		)
		return
	}

	h.completePickup(dispatched, picked)
}

// awaitPickup blocks until the courier has an order to pick up.
func (h *SubmitOrderCommandHandler) awaitPickup(ctx context.Context, dispatched *courier.Courier) (*order.Order, error) {
	if bound := dispatched.Bound(); bound != nil {
		h.logger.Info("Waiting for order to be ready",
			zap.String("courier", dispatched.String()),
			zap.String("order", bound.String()),
		)

		if err := h.matcher.AwaitReady(ctx, bound); err != nil {
			return nil, err
		}
		return bound, nil
	}

	h.logger.Info("Waiting for the next order", zap.String("courier", dispatched.String()))

	return h.matcher.ClaimNext(ctx, dispatched.ID())
}

// completePickup computes the wait split, finishes the courier's
// lifecycle, and records the completion with its running averages.
func (h *SubmitOrderCommandHandler) completePickup(dispatched *courier.Courier, picked *order.Order) {
	courierWait, orderWait, err := dispatched.WaitSplit(picked)
	if err != nil {
		h.logger.Error("Computing wait split failed",
			zap.String("courier", dispatched.String()),
			zap.String("order", picked.String()),
			zap.Error(err),
		)
		return
	}

	if err = dispatched.CompletePickup(picked.ID()); err != nil {
		h.logger.Error("Completing pickup failed",
			zap.String("courier", dispatched.String()),
			zap.String("order", picked.String()),
			zap.Error(err),
		)
		return
	}

	completion, err := stats.NewCompletion(dispatched.ID(), picked.ID(), courierWait, orderWait, time.Now())
	if err != nil {
		h.logger.Error("Building completion record failed",
			zap.String("courier", dispatched.String()),
			zap.Error(err),
		)
		return
	}

	if err = h.ledger.Record(completion); err != nil {
		h.logger.Error("Recording completion failed",
			zap.String("courier", dispatched.String()),
			zap.Error(err),
		)
		return
	}

	h.logger.Info("Picked up",
		zap.String("courier", dispatched.String()),
		zap.String("order", picked.String()),
		zap.Int64("waited_ms", courierWait.Milliseconds()),
		zap.Int64("order_waited_ms", orderWait.Milliseconds()),
	)

	orderAvg, courierAvg, _, err := h.ledger.Averages()
	if err != nil {
		return
	}

	h.logger.Info("Average food wait time", zap.Int64("milliseconds", orderAvg.Milliseconds()))
	h.logger.Info("Average courier wait time", zap.Int64("milliseconds", courierAvg.Milliseconds()))
}

// sleepFor blocks for the given duration or until the context is cancelled.
func sleepFor(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
