package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/payment-gateway/internal/gateway"
	"github.com/akylbek/payment-system/payment-gateway/internal/models"
	"github.com/akylbek/payment-system/payment-gateway/internal/repository/inmemory"
)

type fakeLocker struct {
	acquire  bool
	acquired []string
	released []string
}

func (f *fakeLocker) Acquire(_ context.Context, key string) (bool, error) {
	f.acquired = append(f.acquired, key)
	return f.acquire, nil
}

func (f *fakeLocker) Release(_ context.Context, key string) error {
	f.released = append(f.released, key)
	return nil
}

type captureEvents struct {
	events []gateway.StatusEvent
}

func (c *captureEvents) Publish(_ context.Context, event gateway.StatusEvent) error {
	c.events = append(c.events, event)
	return nil
}

func newTestEngine(store *inmemory.Store) (*gateway.Engine, *captureEvents) {
	events := &captureEvents{}
	engine := gateway.NewEngine(store, &fakeLocker{acquire: true}, events, gateway.MarkerPolicy{}, zap.NewNop())
	return engine, events
}

func upiNormalized(vpa string) *models.NormalizedPayment {
	return &models.NormalizedPayment{
		OrderID:    "order_1",
		MerchantID: "merch_1",
		Method:     models.MethodUPI,
		Amount:     500,
		Currency:   "INR",
		VPA:        vpa,
	}
}

func TestEngine_CreateThenProcessCaptures(t *testing.T) {
	store := inmemory.NewStore()
	engine, events := newTestEngine(store)
	ctx := context.Background()

	created, err := engine.Create(ctx, upiNormalized("alice@bank"))
	require.NoError(t, err)
	require.Equal(t, models.StatusCreated, created.Status)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	processed, err := engine.Process(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusCaptured, processed.Status)
	require.Equal(t, int64(500), processed.Amount)
	require.Equal(t, "alice@bank", processed.VPA)
	require.Empty(t, processed.ErrorCode)

	// created -> processing, processing -> captured
	require.Len(t, events.events, 2)
	require.Equal(t, models.StatusProcessing, events.events[0].Status)
	require.Equal(t, models.StatusCaptured, events.events[1].Status)

	view := gateway.Project(processed, false)
	require.NotContains(t, view, "card_network")
	require.Equal(t, models.StatusCaptured, view["status"])
}

func TestEngine_DeclineMarkers(t *testing.T) {
	tests := []struct {
		name string
		np   *models.NormalizedPayment
	}{
		{"upi fail handle", upiNormalized("bob@fail")},
		{"card decline last4", &models.NormalizedPayment{
			OrderID:     "order_1",
			MerchantID:  "merch_1",
			Method:      models.MethodCard,
			Amount:      500,
			Currency:    "INR",
			CardNetwork: models.NetworkVisa,
			CardLast4:   "0002",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := inmemory.NewStore()
			engine, _ := newTestEngine(store)
			ctx := context.Background()

			created, err := engine.Create(ctx, tt.np)
			require.NoError(t, err)

			processed, err := engine.Process(ctx, created.ID)
			require.NoError(t, err)
			require.Equal(t, models.StatusFailed, processed.Status)
			require.Equal(t, models.ErrCodePaymentDeclined, processed.ErrorCode)
			require.NotEmpty(t, processed.ErrorDescription)
		})
	}
}

func TestEngine_TerminalPaymentsCannotBeReprocessed(t *testing.T) {
	store := inmemory.NewStore()
	engine, _ := newTestEngine(store)
	ctx := context.Background()

	created, err := engine.Create(ctx, upiNormalized("alice@bank"))
	require.NoError(t, err)

	_, err = engine.Process(ctx, created.ID)
	require.NoError(t, err)

	_, err = engine.Process(ctx, created.ID)
	require.Error(t, err, "processing a captured payment is an internal error")
	var ge *models.GatewayError
	require.False(t, errors.As(err, &ge), "must not surface as a caller-facing gateway error")
}

func TestEngine_ProcessUnknownPayment(t *testing.T) {
	store := inmemory.NewStore()
	engine, _ := newTestEngine(store)

	_, err := engine.Process(context.Background(), "pay_missing")
	require.Error(t, err)
}

func TestEngine_LockContention(t *testing.T) {
	store := inmemory.NewStore()
	engine := gateway.NewEngine(store, &fakeLocker{acquire: false}, nil, gateway.MarkerPolicy{}, zap.NewNop())
	ctx := context.Background()

	created, err := engine.Create(ctx, upiNormalized("alice@bank"))
	require.NoError(t, err)

	_, err = engine.Process(ctx, created.ID)
	require.ErrorContains(t, err, "already being processed")
}

func TestEngine_GetScopedToMerchant(t *testing.T) {
	store := inmemory.NewStore()
	engine, _ := newTestEngine(store)
	ctx := context.Background()

	created, err := engine.Create(ctx, upiNormalized("alice@bank"))
	require.NoError(t, err)

	p, err := engine.Get(ctx, created.ID, "merch_1")
	require.NoError(t, err)
	require.Equal(t, created.ID, p.ID)

	// Wrong merchant and unknown id must be indistinguishable.
	_, errForeign := engine.Get(ctx, created.ID, "merch_2")
	_, errMissing := engine.Get(ctx, "pay_missing", "merch_1")

	var geForeign, geMissing *models.GatewayError
	require.ErrorAs(t, errForeign, &geForeign)
	require.ErrorAs(t, errMissing, &geMissing)
	require.Equal(t, geMissing.Code, geForeign.Code)
	require.Equal(t, geMissing.Description, geForeign.Description)
}
