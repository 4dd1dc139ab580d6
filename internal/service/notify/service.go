package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/ordercast/internal/config"
	"github.com/mamadbah2/ordercast/internal/domain/models"
	"github.com/mamadbah2/ordercast/internal/service/orders"
	"github.com/mamadbah2/ordercast/internal/telemetry"
	client "github.com/mamadbah2/ordercast/pkg/clients/whatsapp"
)

// dispatchTimeout bounds the single outbound call. The webhook response has
// already been written by the time dispatch starts, so the timeout only
// protects the worker goroutine, never the sender-facing latency.
const dispatchTimeout = 10 * time.Second

// Outcome classifies what happened to a notification after the webhook was
// acknowledged. These are downstream-only states: the original sender never
// sees them, only logs and metrics do.
type Outcome string

const (
	// OutcomeSent means the provider accepted the template message.
	OutcomeSent Outcome = telemetry.OutcomeSent
	// OutcomeSkipped means no recipient phone was resolvable, so no call
	// was attempted.
	OutcomeSkipped Outcome = telemetry.OutcomeSkipped
	// OutcomeFailed means the dispatch call errored; it is not retried.
	OutcomeFailed Outcome = telemetry.OutcomeFailed
)

// OrderNotifier is the post-acknowledgment pipeline the HTTP layer hands
// verified orders to.
type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order models.ShopifyOrder) (Outcome, error)
}

// Service runs extract → normalize → compose → dispatch for one order.
type Service struct {
	template       config.TemplateConfig
	defaultCountry string
	client         client.Client
	normalizer     *orders.Normalizer
	metrics        *telemetry.Metrics
	logger         *zap.Logger
}

// NewService wires a new notification service instance.
func NewService(cfg config.Config, whatsClient client.Client, metrics *telemetry.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		template:       cfg.WhatsApp.Template,
		defaultCountry: cfg.Orders.DefaultCountryCode,
		client:         whatsClient,
		normalizer:     orders.NewNormalizer(cfg.Orders.DefaultCountryCode, logger.Named("phone")),
		metrics:        metrics,
		logger:         logger,
	}
}

// NotifyOrderCreated sends the order-confirmation template for one decoded
// order. A missing or unusable phone is a skip, not an error: the webhook
// itself already succeeded and there is simply nobody to message. Dispatch
// failures are logged and counted, never retried.
func (s *Service) NotifyOrderCreated(ctx context.Context, order models.ShopifyOrder) (Outcome, error) {
	rec := orders.Extract(order, s.defaultCountry)

	log := s.logger.With(zap.String("order_id", rec.OrderID))

	if rec.Phone == "" {
		log.Info("no recipient phone on order, skipping notification")
		s.observe(OutcomeSkipped)
		return OutcomeSkipped, nil
	}

	to, ok := s.normalizer.Normalize(rec.Phone, rec.CountryCode)
	if !ok {
		log.Info("recipient phone unusable after sanitization, skipping notification")
		s.observe(OutcomeSkipped)
		return OutcomeSkipped, nil
	}

	msg := ComposeTemplate(rec, to, s.template)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, dispatchTimeout)
	defer cancel()

	resp, err := s.client.SendTemplateMessage(ctxWithTimeout, msg)
	if err != nil {
		log.Error("failed to dispatch order notification", zap.Error(err))
		s.observe(OutcomeFailed)
		return OutcomeFailed, err
	}

	log.Info("order notification dispatched",
		zap.String("provider_message_id", resp.MessageID()))
	s.observe(OutcomeSent)
	return OutcomeSent, nil
}

func (s *Service) observe(outcome Outcome) {
	if s.metrics != nil {
		s.metrics.ObserveNotification(string(outcome))
	}
}
