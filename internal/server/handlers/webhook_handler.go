package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/ordercast/internal/service/notify"
	"github.com/mamadbah2/ordercast/internal/service/orders"
	"github.com/mamadbah2/ordercast/internal/service/signature"
	"github.com/mamadbah2/ordercast/internal/telemetry"
)

// SignatureHeader carries Shopify's base64 HMAC-SHA256 digest of the raw
// request body.
const SignatureHeader = "X-Shopify-Hmac-Sha256"

// notifyBudget bounds the whole detached pipeline for one order, on top of
// the tighter per-call dispatch timeout inside the notify service.
const notifyBudget = 30 * time.Second

// WebhookHandler ingests Shopify order-creation webhooks. The contract with
// Shopify is acknowledge-fast: the response is resolved from the raw bytes
// and the signature alone, and notification dispatch runs detached after
// the status has been decided.
type WebhookHandler struct {
	secret   string
	notifier notify.OrderNotifier
	metrics  *telemetry.Metrics
	logger   *zap.Logger
	inflight sync.WaitGroup
}

// NewWebhookHandler constructs the HTTP handler adapter.
func NewWebhookHandler(secret string, notifier notify.OrderNotifier, metrics *telemetry.Metrics, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{
		secret:   secret,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// OrderCreated handles POST /webhooks/orders/create.
//
// The body must stay byte-exact: Shopify signs the bytes it sent, so the
// HMAC is computed over c.GetRawData() before any JSON decoding, and the
// decoder later reads those same bytes. Rejections return a bare 403 with
// no detail about which check failed.
func (h *WebhookHandler) OrderCreated(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Error("failed to read webhook body", zap.Error(err))
		h.respond(c, http.StatusInternalServerError)
		return
	}

	if !signature.Verify(raw, c.GetHeader(SignatureHeader), h.secret) {
		h.logger.Warn("rejected webhook with invalid signature",
			zap.Int("body_bytes", len(raw)))
		h.respond(c, http.StatusForbidden)
		return
	}

	order, err := orders.DecodeOrder(raw)
	if err != nil {
		h.logger.Error("verified webhook body is not a valid order",
			zap.Error(err), zap.Int("body_bytes", len(raw)))
		h.respond(c, http.StatusInternalServerError)
		return
	}

	h.respond(c, http.StatusOK)

	// Acknowledged. Everything below is invisible to Shopify: outcomes
	// surface only through logs and metrics, and a dispatch failure must
	// never touch the response above.
	log := h.logger.With(zap.String("request_id", RequestID(c)))

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyBudget)
		defer cancel()

		if _, err := h.notifier.NotifyOrderCreated(ctx, order); err != nil {
			log.Warn("order notification not delivered", zap.Error(err))
		}
	}()
}

// Drain waits for in-flight notification dispatches, bounded by ctx. Called
// during graceful shutdown so accepted orders still get their send attempt.
func (h *WebhookHandler) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *WebhookHandler) respond(c *gin.Context, status int) {
	if h.metrics != nil {
		h.metrics.ObserveWebhook(status)
	}
	c.Status(status)
}
