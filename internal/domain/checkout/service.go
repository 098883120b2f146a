package checkout

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"jugad/internal/analytics"
	"jugad/internal/domain/pricing"
	"jugad/internal/domain/selection"
	"jugad/internal/domain/wallet"
	"jugad/internal/notification"
)

// creditGranter credits the wallet after a pack purchase.
type creditGranter interface {
	Add(ctx context.Context, userID int64, amount int64, reason string) (*wallet.CreditWallet, *wallet.CreditTransaction, error)
}

// planRecorder persists which plan a user is subscribed to.
type planRecorder interface {
	SetPlan(ctx context.Context, userID int64, planID string) error
}

// Service runs the purchase flow. The authentication gate comes first: an
// anonymous pay click returns ErrAuthRequired synchronously, before the
// gateway is called and before any event is tracked.
type Service struct {
	db       *gorm.DB
	gateway  PaymentGateway
	credits  creditGranter
	plans    planRecorder
	events   analytics.Sink
	notifier notification.Notifier

	mu       sync.Mutex
	inFlight map[int64]bool
}

func NewService(db *gorm.DB, gateway PaymentGateway, credits creditGranter, plans planRecorder, events analytics.Sink, notifier notification.Notifier) *Service {
	if events == nil {
		events = analytics.NopSink{}
	}
	if notifier == nil {
		notifier = notification.NewLogNotifier()
	}
	return &Service{
		db:       db,
		gateway:  gateway,
		credits:  credits,
		plans:    plans,
		events:   events,
		notifier: notifier,
		inFlight: make(map[int64]bool),
	}
}

// Pay charges the resolved offer for the given user. userID == 0 means the
// caller is anonymous.
func (s *Service) Pay(ctx context.Context, userID int64, offer *selection.ResolvedOffer, promoCode string) (*Order, error) {
	if userID == 0 {
		return nil, ErrAuthRequired
	}
	if offer == nil {
		return nil, ErrNothingSelected
	}

	if !s.acquire(userID) {
		return nil, ErrCheckoutInProgress
	}
	defer s.release(userID)

	s.events.Track(analytics.EventCheckoutPayClick, map[string]any{
		"offer_id":   offer.OfferID,
		"offer_type": string(offer.Kind),
		"amount":     offer.Price,
	})

	receipt, err := s.gateway.Charge(ctx, ChargeRequest{
		UserID:      userID,
		OfferID:     offer.OfferID,
		Amount:      offer.Price,
		Description: offer.DisplayName,
		PromoCode:   promoCode,
	})
	if err != nil {
		s.events.Track(analytics.EventCheckoutError, map[string]any{
			"offer_id": offer.OfferID,
			"error":    err.Error(),
		})
		s.notifier.Notify(userID, "Paiement refusé", "Le paiement n'a pas abouti. Aucun montant n'a été débité.", notification.SeverityError)
		s.recordOrder(ctx, userID, offer, promoCode, OrderStatusFailed, "")
		return nil, &PaymentError{Err: err}
	}

	order, err := s.recordOrder(ctx, userID, offer, promoCode, OrderStatusPaid, receipt.ID)
	if err != nil {
		return nil, err
	}

	if offer.Kind == pricing.ModeCredits && offer.Credits > 0 {
		if _, _, err := s.credits.Add(ctx, userID, int64(offer.Credits), "pack purchase "+offer.OfferID); err != nil {
			return nil, err
		}
	}
	if offer.Kind == pricing.ModeSubscription && s.plans != nil {
		if err := s.plans.SetPlan(ctx, userID, offer.OfferID); err != nil {
			return nil, err
		}
	}

	s.events.Track(analytics.EventCheckoutSuccess, map[string]any{
		"offer_id":   offer.OfferID,
		"offer_type": string(offer.Kind),
		"amount":     offer.Price,
		"order_id":   order.ID,
	})
	s.notifier.Notify(userID, "Paiement confirmé", fmt.Sprintf("%s activé. Bon voyage !", offer.DisplayName), notification.SeveritySuccess)

	return order, nil
}

// ListOrders returns the user's purchase history, newest first.
func (s *Service) ListOrders(ctx context.Context, userID int64) ([]Order, error) {
	var orders []Order
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) recordOrder(ctx context.Context, userID int64, offer *selection.ResolvedOffer, promoCode string, status OrderStatus, receiptID string) (*Order, error) {
	order := &Order{
		UserID:       userID,
		OfferID:      offer.OfferID,
		OfferType:    string(offer.Kind),
		BillingCycle: string(offer.BillingCycle),
		Amount:       offer.Price,
		Credits:      offer.Credits,
		PromoCode:    promoCode,
		Status:       status,
		ReceiptID:    receiptID,
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) acquire(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *Service) release(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}
