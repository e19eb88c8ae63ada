package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/akylbek/payment-system/payment-gateway/internal/models"
)

// Store is the postgres-backed persistence collaborator. Lookups return
// (nil, nil) for missing rows so handlers cannot distinguish a foreign
// merchant's record from a nonexistent one.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InitDB() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS merchants (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			api_key VARCHAR(64) NOT NULL UNIQUE,
			api_secret VARCHAR(64) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(64) PRIMARY KEY,
			merchant_id VARCHAR(64) NOT NULL REFERENCES merchants(id),
			amount BIGINT NOT NULL CHECK (amount > 0),
			currency VARCHAR(3) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id VARCHAR(64) PRIMARY KEY,
			order_id VARCHAR(64) NOT NULL REFERENCES orders(id),
			merchant_id VARCHAR(64) NOT NULL REFERENCES merchants(id),
			method VARCHAR(10) NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			currency VARCHAR(3) NOT NULL,
			status VARCHAR(20) NOT NULL,
			vpa VARCHAR(255) NOT NULL DEFAULT '',
			card_network VARCHAR(20) NOT NULL DEFAULT '',
			card_last4 VARCHAR(4) NOT NULL DEFAULT '',
			error_code VARCHAR(64) NOT NULL DEFAULT '',
			error_description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_merchant ON payments(merchant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, merchant_id, amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, order.ID, order.MerchantID, order.Amount, order.Currency, order.CreatedAt)
	return err
}

func (s *Store) GetOrder(ctx context.Context, orderID, merchantID string) (*models.Order, error) {
	return s.scanOrder(s.db.QueryRowContext(ctx, `
		SELECT id, merchant_id, amount, currency, created_at
		FROM orders WHERE id = $1 AND merchant_id = $2
	`, orderID, merchantID))
}

func (s *Store) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	return s.scanOrder(s.db.QueryRowContext(ctx, `
		SELECT id, merchant_id, amount, currency, created_at
		FROM orders WHERE id = $1
	`, orderID))
}

func (s *Store) scanOrder(row *sql.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.MerchantID, &o.Amount, &o.Currency, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) CreatePayment(ctx context.Context, p *models.Payment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (
			id, order_id, merchant_id, method, amount, currency, status,
			vpa, card_network, card_last4, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, p.ID, p.OrderID, p.MerchantID, p.Method, p.Amount, p.Currency, p.Status,
		p.VPA, p.CardNetwork, p.CardLast4, p.CreatedAt, p.UpdatedAt)
	return err
}

const paymentColumns = `id, order_id, merchant_id, method, amount, currency, status,
	vpa, card_network, card_last4, error_code, error_description, created_at, updated_at`

func (s *Store) GetPayment(ctx context.Context, paymentID, merchantID string) (*models.Payment, error) {
	return s.scanPayment(s.db.QueryRowContext(ctx, `
		SELECT `+paymentColumns+` FROM payments WHERE id = $1 AND merchant_id = $2
	`, paymentID, merchantID))
}

func (s *Store) GetPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	return s.scanPayment(s.db.QueryRowContext(ctx, `
		SELECT `+paymentColumns+` FROM payments WHERE id = $1
	`, paymentID))
}

func (s *Store) scanPayment(row *sql.Row) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.MerchantID, &p.Method, &p.Amount,
		&p.Currency, &p.Status, &p.VPA, &p.CardNetwork, &p.CardLast4,
		&p.ErrorCode, &p.ErrorDescription, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) TransitionPayment(ctx context.Context, paymentID string, from, to models.PaymentStatus, errCode, errDesc string) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE payments
		SET status = $1, error_code = $2, error_description = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`, to, errCode, errDesc, paymentID, from)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *Store) ListPayments(ctx context.Context, merchantID string, limit int) ([]*models.Payment, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+paymentColumns+` FROM payments
		WHERE merchant_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, merchantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.MerchantID, &p.Method, &p.Amount,
			&p.Currency, &p.Status, &p.VPA, &p.CardNetwork, &p.CardLast4,
			&p.ErrorCode, &p.ErrorDescription, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (s *Store) PaymentStats(ctx context.Context, merchantID string) (*models.PaymentStats, error) {
	var stats models.PaymentStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'captured'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'captured'), 0)
		FROM payments WHERE merchant_id = $1
	`, merchantID).Scan(&stats.TotalPayments, &stats.Captured, &stats.Failed,
		&stats.TotalAmount, &stats.CapturedAmount)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Store) GetMerchantByCredentials(ctx context.Context, apiKey, apiSecret string) (*models.Merchant, error) {
	var m models.Merchant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, api_key, api_secret, is_active, created_at
		FROM merchants
		WHERE api_key = $1 AND api_secret = $2 AND is_active = TRUE
	`, apiKey, apiSecret).Scan(&m.ID, &m.Name, &m.APIKey, &m.APISecret, &m.IsActive, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) EnsureTestMerchant(ctx context.Context) (*models.Merchant, error) {
	const apiKey = "key_test_demo"
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO merchants (id, name, api_key, api_secret, is_active, created_at)
		VALUES ($1, $2, $3, $4, TRUE, $5)
		ON CONFLICT (api_key) DO NOTHING
	`, "merch_"+uuid.NewString(), "Test Merchant", apiKey, "secret_test_demo", time.Now().UTC())
	if err != nil {
		return nil, err
	}

	var m models.Merchant
	err = s.db.QueryRowContext(ctx, `
		SELECT id, name, api_key, api_secret, is_active, created_at
		FROM merchants WHERE api_key = $1
	`, apiKey).Scan(&m.ID, &m.Name, &m.APIKey, &m.APISecret, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
