package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"jugad/internal/analytics"
	"jugad/internal/domain/pricing"
	"jugad/internal/domain/selection"
	"jugad/internal/domain/wallet"
	"jugad/internal/notification"
)

type stubGateway struct {
	mu      sync.Mutex
	err     error
	delay   time.Duration
	charges []ChargeRequest
}

func (g *stubGateway) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	g.mu.Lock()
	g.charges = append(g.charges, req)
	g.mu.Unlock()

	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.delay):
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return &Receipt{ID: "rcpt-1", ChargedAt: time.Now()}, nil
}

type stubPlanRecorder struct {
	mu    sync.Mutex
	plans map[int64]string
}

func (r *stubPlanRecorder) SetPlan(_ context.Context, userID int64, planID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.plans == nil {
		r.plans = make(map[int64]string)
	}
	r.plans[userID] = planID
	return nil
}

type checkoutFixture struct {
	service  *Service
	wallet   *wallet.Service
	gateway  *stubGateway
	plans    *stubPlanRecorder
	sink     *analytics.MemorySink
	notifier *notification.MemoryNotifier
}

func setupCheckout(t *testing.T) *checkoutFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Order{}, &wallet.CreditWallet{}, &wallet.CreditTransaction{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	f := &checkoutFixture{
		wallet:   wallet.NewService(db),
		gateway:  &stubGateway{},
		plans:    &stubPlanRecorder{},
		sink:     analytics.NewMemorySink(),
		notifier: notification.NewMemoryNotifier(),
	}
	f.service = NewService(db, f.gateway, f.wallet, f.plans, f.sink, f.notifier)
	return f
}

func packOffer() *selection.ResolvedOffer {
	return &selection.ResolvedOffer{
		Kind:        pricing.ModeCredits,
		OfferID:     "smart60",
		DisplayName: "Pack Smart",
		Price:       24.90,
		Credits:     60,
	}
}

func planOffer() *selection.ResolvedOffer {
	return &selection.ResolvedOffer{
		Kind:         pricing.ModeSubscription,
		OfferID:      "pro",
		DisplayName:  "Pro",
		Price:        99,
		PeriodSuffix: "/year",
		BillingCycle: pricing.BillingYearly,
	}
}

func TestPayRequiresAuth(t *testing.T) {
	f := setupCheckout(t)

	_, err := f.service.Pay(context.Background(), 0, packOffer(), "")
	assert.ErrorIs(t, err, ErrAuthRequired)

	// An anonymous click must not reach the gateway or the sink.
	assert.Empty(t, f.gateway.charges)
	assert.Empty(t, f.sink.Events())
	assert.Empty(t, f.notifier.Messages())
}

func TestPayRequiresSelection(t *testing.T) {
	f := setupCheckout(t)

	_, err := f.service.Pay(context.Background(), 1, nil, "")
	assert.ErrorIs(t, err, ErrNothingSelected)
	assert.Empty(t, f.sink.Events())
}

func TestPayPackCreditsWallet(t *testing.T) {
	f := setupCheckout(t)
	ctx := context.Background()

	order, err := f.service.Pay(ctx, 1, packOffer(), "")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPaid, order.Status)
	assert.Equal(t, "smart60", order.OfferID)
	assert.Equal(t, 60, order.Credits)
	assert.Equal(t, "rcpt-1", order.ReceiptID)

	balance, err := f.wallet.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)

	assert.Equal(t, []string{analytics.EventCheckoutPayClick, analytics.EventCheckoutSuccess}, f.sink.Names())

	msgs := f.notifier.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, notification.SeveritySuccess, msgs[0].Severity)
}

func TestPayPlanRecordsSubscription(t *testing.T) {
	f := setupCheckout(t)
	ctx := context.Background()

	order, err := f.service.Pay(ctx, 2, planOffer(), "")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPaid, order.Status)
	assert.Equal(t, "yearly", order.BillingCycle)

	assert.Equal(t, "pro", f.plans.plans[2])

	// Plans never credit the wallet.
	balance, err := f.wallet.Balance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestPayGatewayFailure(t *testing.T) {
	f := setupCheckout(t)
	f.gateway.err = errors.New("card declined")
	ctx := context.Background()

	_, err := f.service.Pay(ctx, 3, packOffer(), "")
	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)

	assert.Equal(t, []string{analytics.EventCheckoutPayClick, analytics.EventCheckoutError}, f.sink.Names())

	msgs := f.notifier.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, notification.SeverityError, msgs[0].Severity)

	// The failed attempt is recorded but no credits move.
	orders, err := f.service.ListOrders(ctx, 3)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, OrderStatusFailed, orders[0].Status)

	balance, err := f.wallet.Balance(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestPayRejectsDoubleSubmit(t *testing.T) {
	f := setupCheckout(t)
	f.gateway.delay = 100 * time.Millisecond
	ctx := context.Background()

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := f.service.Pay(ctx, 4, packOffer(), "")
		done <- err
	}()

	<-started
	time.Sleep(20 * time.Millisecond)

	_, err := f.service.Pay(ctx, 4, packOffer(), "")
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	require.NoError(t, <-done)

	// Only the first click was charged and credited.
	balance, err := f.wallet.Balance(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)
	assert.Len(t, f.gateway.charges, 1)
}

func TestPayDifferentUsersDoNotBlockEachOther(t *testing.T) {
	f := setupCheckout(t)
	f.gateway.delay = 50 * time.Millisecond
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.service.Pay(ctx, int64(10+i), packOffer(), "")
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestSimulatedGatewayHonorsContext(t *testing.T) {
	g := NewSimulatedGateway(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Charge(ctx, ChargeRequest{UserID: 1, OfferID: "smart60", Amount: 24.90})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedGatewayApproves(t *testing.T) {
	g := NewSimulatedGateway(0)

	receipt, err := g.Charge(context.Background(), ChargeRequest{UserID: 1, OfferID: "pro", Amount: 99})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
}
