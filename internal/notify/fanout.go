package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Store interface {
	CreateNotification(ctx context.Context, n entities.Notification) error
	EnqueueEmail(ctx context.Context, e entities.Email) error
	EnqueueSMS(ctx context.Context, s entities.SMS) error
}

type ProfileGetter interface {
	GetProfile(ctx context.Context, profileID string) (entities.Profile, error)
}

type ProfileCache interface {
	Get(key string) (entities.Profile, bool)
	Set(key string, value entities.Profile)
}

const (
	buyerTitle  = "Order Confirmed"
	sellerTitle = "New Sale"
)

type Fanout struct {
	logger      *slog.Logger
	store       Store
	profiles    ProfileGetter
	cache       ProfileCache
	concurrency int
	timeout     time.Duration

	now   func() time.Time
	newID func() string
}

func NewFanout(logger *slog.Logger, store Store, profiles ProfileGetter, cache ProfileCache, cfg config.Fanout) *Fanout {
	return &Fanout{
		logger:      logger.With(slog.String("service", "notify")),
		store:       store,
		profiles:    profiles,
		cache:       cache,
		concurrency: max(cfg.Concurrency, 1),
		timeout:     cfg.Timeout,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// OrderPlaced notifies the buyer and every seller of the order other than the
// buyer. It returns once every dispatch has finished; failures are logged and
// never reported to the caller.
func (f *Fanout) OrderPlaced(ctx context.Context, order entities.Order, buyer entities.Buyer) {
	ctx = context.WithoutCancel(ctx)
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var g errgroup.Group
	g.SetLimit(f.concurrency)

	g.Go(func() error {
		f.notifyBuyer(ctx, order, buyer)
		return nil
	})
	for _, sellerID := range order.SellerIDs() {
		g.Go(func() error {
			f.notifySeller(ctx, order, sellerID)
			return nil
		})
	}

	_ = g.Wait()
}

func (f *Fanout) notifyBuyer(ctx context.Context, order entities.Order, buyer entities.Buyer) {
	msg := fmt.Sprintf("Your order #%s has been placed. Total: %s", shortID(order.ID), order.Total.StringFixed(2))
	f.inApp(ctx, order, buyer.UID, buyerTitle, msg, "/orders/"+order.ID)

	if buyer.Email == "" {
		return
	}
	html, err := renderBuyerEmail(order, buyer)
	if err != nil {
		f.failed(order, buyer.UID, entities.ChannelEmail, err)
		return
	}
	f.deliver(order, buyer.UID, entities.ChannelEmail, f.store.EnqueueEmail(ctx, entities.Email{
		To:      buyer.Email,
		Subject: fmt.Sprintf("Order confirmed #%s", shortID(order.ID)),
		HTML:    html,
	}))
}

func (f *Fanout) notifySeller(ctx context.Context, order entities.Order, sellerID string) {
	qty, amount := order.SellerShare(sellerID)
	msg := fmt.Sprintf("You sold %d item(s) in order #%s for %s", qty, shortID(order.ID), amount.StringFixed(2))
	f.inApp(ctx, order, sellerID, sellerTitle, msg, "/seller/orders/"+order.ID)

	profile, err := f.profile(ctx, sellerID)
	if err != nil {
		f.logger.Warn("seller profile unavailable",
			slog.String("order_id", order.ID),
			slog.String("recipient", sellerID),
			slog.Any("error", err),
		)
		return
	}

	if profile.Email != "" {
		html, err := renderSellerEmail(order, profile, qty, amount)
		if err != nil {
			f.failed(order, sellerID, entities.ChannelEmail, err)
		} else {
			f.deliver(order, sellerID, entities.ChannelEmail, f.store.EnqueueEmail(ctx, entities.Email{
				To:      profile.Email,
				Subject: fmt.Sprintf("New sale: order #%s", shortID(order.ID)),
				HTML:    html,
			}))
		}
	}

	if profile.Phone != "" {
		f.deliver(order, sellerID, entities.ChannelSMS, f.store.EnqueueSMS(ctx, entities.SMS{
			To:   profile.Phone,
			Body: fmt.Sprintf("New sale! Order #%s: %d item(s), %s. Ship to %s.", shortID(order.ID), qty, amount.StringFixed(2), order.Shipping.City),
		}))
	}
}

func (f *Fanout) inApp(ctx context.Context, order entities.Order, userID, title, msg, link string) {
	n, err := entities.NewNotification(f.newID(), userID, entities.NotificationTypeOrder, title, msg, link, f.now())
	if err == nil {
		err = f.store.CreateNotification(ctx, n)
	}
	f.deliver(order, userID, entities.ChannelInApp, err)
}

func (f *Fanout) profile(ctx context.Context, id string) (entities.Profile, error) {
	if p, ok := f.cache.Get(id); ok {
		return p, nil
	}
	p, err := f.profiles.GetProfile(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	f.cache.Set(id, p)
	return p, nil
}

func (f *Fanout) deliver(order entities.Order, recipient string, channel entities.Channel, err error) {
	if err != nil {
		f.failed(order, recipient, channel, err)
		return
	}
	notificationsTotal.WithLabelValues(string(channel), "ok").Inc()
}

func (f *Fanout) failed(order entities.Order, recipient string, channel entities.Channel, err error) {
	result := "failed"
	if errors.Is(err, context.DeadlineExceeded) {
		result = "timeout"
	}
	notificationsTotal.WithLabelValues(string(channel), result).Inc()
	f.logger.Error("failed to notify",
		slog.String("order_id", order.ID),
		slog.String("recipient", recipient),
		slog.String("channel", string(channel)),
		slog.Any("error", err),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
