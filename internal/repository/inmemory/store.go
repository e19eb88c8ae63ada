// Package inmemory provides a map-backed Store used by tests and local
// development. It mirrors the postgres repository's semantics, including
// the compare-and-swap transition and merchant-scoped lookups.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

type Store struct {
	mu        sync.RWMutex
	orders    map[string]*models.Order
	payments  map[string]*models.Payment
	merchants map[string]*models.Merchant // keyed by api key
}

func NewStore() *Store {
	return &Store{
		orders:    make(map[string]*models.Order),
		payments:  make(map[string]*models.Payment),
		merchants: make(map[string]*models.Merchant),
	}
}

func (s *Store) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *order
	s.orders[order.ID] = &copied
	return nil
}

func (s *Store) GetOrder(_ context.Context, orderID, merchantID string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[orderID]
	if !ok || o.MerchantID != merchantID {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (s *Store) GetOrderByID(_ context.Context, orderID string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (s *Store) CreatePayment(_ context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *payment
	s.payments[payment.ID] = &copied
	return nil
}

func (s *Store) GetPayment(_ context.Context, paymentID, merchantID string) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[paymentID]
	if !ok || p.MerchantID != merchantID {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (s *Store) GetPaymentByID(_ context.Context, paymentID string) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[paymentID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (s *Store) TransitionPayment(_ context.Context, paymentID string, from, to models.PaymentStatus, errCode, errDesc string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[paymentID]
	if !ok || p.Status != from {
		return 0, nil
	}
	p.Status = to
	p.ErrorCode = errCode
	p.ErrorDescription = errDesc
	p.UpdatedAt = time.Now().UTC()
	return 1, nil
}

func (s *Store) ListPayments(_ context.Context, merchantID string, limit int) ([]*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Payment
	for _, p := range s.payments {
		if p.MerchantID != merchantID {
			continue
		}
		copied := *p
		out = append(out, &copied)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) PaymentStats(_ context.Context, merchantID string) (*models.PaymentStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &models.PaymentStats{}
	for _, p := range s.payments {
		if p.MerchantID != merchantID {
			continue
		}
		stats.TotalPayments++
		stats.TotalAmount += p.Amount
		switch p.Status {
		case models.StatusCaptured:
			stats.Captured++
			stats.CapturedAmount += p.Amount
		case models.StatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

func (s *Store) GetMerchantByCredentials(_ context.Context, apiKey, apiSecret string) (*models.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.merchants[apiKey]
	if !ok || m.APISecret != apiSecret || !m.IsActive {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

// SeedMerchant registers a merchant directly; test fixtures use this to
// model multi-merchant scenarios.
func (s *Store) SeedMerchant(m *models.Merchant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *m
	s.merchants[m.APIKey] = &copied
}

func (s *Store) EnsureTestMerchant(_ context.Context) (*models.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	const testKey = "key_test_demo"
	if m, ok := s.merchants[testKey]; ok {
		copied := *m
		return &copied, nil
	}
	m := &models.Merchant{
		ID:        "merch_" + uuid.NewString(),
		Name:      "Test Merchant",
		APIKey:    testKey,
		APISecret: "secret_test_demo",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.merchants[testKey] = m
	copied := *m
	return &copied, nil
}
