package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/interfaces"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

// Locker serializes processing per payment id. The redis implementation
// lives in lock.go; tests substitute a fake.
type Locker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// EventPublisher receives a StatusEvent for every state transition.
type EventPublisher interface {
	Publish(ctx context.Context, event StatusEvent) error
}

type StatusEvent struct {
	PaymentID      string               `json:"payment_id"`
	OrderID        string               `json:"order_id"`
	Status         models.PaymentStatus `json:"status"`
	PreviousStatus models.PaymentStatus `json:"previous_status"`
	Timestamp      time.Time            `json:"timestamp"`
}

// Engine drives a payment through created -> processing -> captured|failed.
// All collaborators are injected; the engine never reaches for globals.
type Engine struct {
	store  interfaces.Store
	locker Locker
	events EventPublisher
	policy OutcomePolicy
	logger *zap.Logger
}

func NewEngine(store interfaces.Store, locker Locker, events EventPublisher, policy OutcomePolicy, logger *zap.Logger) *Engine {
	return &Engine{
		store:  store,
		locker: locker,
		events: events,
		policy: policy,
		logger: logger,
	}
}

// Create persists a normalized payment in the created state and assigns
// its id and timestamps.
func (e *Engine) Create(ctx context.Context, np *models.NormalizedPayment) (*models.Payment, error) {
	now := time.Now().UTC()
	p := &models.Payment{
		ID:          "pay_" + uuid.NewString(),
		OrderID:     np.OrderID,
		MerchantID:  np.MerchantID,
		Method:      np.Method,
		Amount:      np.Amount,
		Currency:    np.Currency,
		Status:      models.StatusCreated,
		VPA:         np.VPA,
		CardNetwork: np.CardNetwork,
		CardLast4:   np.CardLast4,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := e.store.CreatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	paymentsCreated.WithLabelValues(string(p.Method)).Inc()
	e.logger.Info("Payment created",
		zap.String("payment_id", p.ID),
		zap.String("order_id", p.OrderID),
		zap.String("method", string(p.Method)),
		zap.Int64("amount", p.Amount),
	)
	return p, nil
}

// Process runs the synchronous lifecycle for a created payment and
// returns it in a terminal state. Attempting to process a terminal
// payment is an internal-consistency error, not a caller mistake.
func (e *Engine) Process(ctx context.Context, paymentID string) (*models.Payment, error) {
	lockKey := "payment_lock:" + paymentID
	locked, err := e.locker.Acquire(ctx, lockKey)
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("payment %s is already being processed", paymentID)
	}
	defer e.locker.Release(ctx, lockKey)

	p, err := e.store.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}
	if p.Status.IsTerminal() {
		return nil, fmt.Errorf("payment %s already in terminal state %s", paymentID, p.Status)
	}

	if err := e.transition(ctx, p, models.StatusCreated, models.StatusProcessing, "", ""); err != nil {
		return nil, err
	}

	ok, code, description := e.policy.Decide(p)
	if ok {
		if err := e.transition(ctx, p, models.StatusProcessing, models.StatusCaptured, "", ""); err != nil {
			return nil, err
		}
		paymentsCaptured.WithLabelValues(string(p.Method)).Inc()
	} else {
		if err := e.transition(ctx, p, models.StatusProcessing, models.StatusFailed, code, description); err != nil {
			return nil, err
		}
		paymentsFailed.WithLabelValues(string(p.Method)).Inc()
	}

	final, err := e.store.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("reload payment: %w", err)
	}
	if final == nil {
		return nil, fmt.Errorf("payment %s disappeared during processing", paymentID)
	}
	return final, nil
}

// Get is the merchant-scoped lookup. A foreign merchant's payment and a
// nonexistent id are indistinguishable to the caller.
func (e *Engine) Get(ctx context.Context, paymentID, merchantID string) (*models.Payment, error) {
	p, err := e.store.GetPayment(ctx, paymentID, merchantID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if p == nil {
		return nil, models.NewGatewayError(models.ErrCodeNotFound, "Payment not found")
	}
	return p, nil
}

func (e *Engine) transition(ctx context.Context, p *models.Payment, from, to models.PaymentStatus, errCode, errDesc string) error {
	rows, err := e.store.TransitionPayment(ctx, p.ID, from, to, errCode, errDesc)
	if err != nil {
		return fmt.Errorf("transition %s -> %s: %w", from, to, err)
	}
	if rows == 0 {
		return fmt.Errorf("invalid state transition from %s to %s for payment %s", from, to, p.ID)
	}

	if e.events != nil {
		event := StatusEvent{
			PaymentID:      p.ID,
			OrderID:        p.OrderID,
			Status:         to,
			PreviousStatus: from,
			Timestamp:      time.Now().UTC(),
		}
		if err := e.events.Publish(ctx, event); err != nil {
			e.logger.Warn("Failed to publish status event",
				zap.String("payment_id", p.ID),
				zap.Error(err),
			)
		}
	}

	e.logger.Info("Payment state transition",
		zap.String("payment_id", p.ID),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(to)),
	)
	return nil
}
