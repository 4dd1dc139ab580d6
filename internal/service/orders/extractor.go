package orders

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mamadbah2/ordercast/internal/domain/models"
)

const (
	// defaultCustomerName stands in when the order carries no buyer profile.
	defaultCustomerName = "Customer"
	// defaultItemSummary stands in when the order has no line items.
	defaultItemSummary = "your items"
)

// DecodeOrder parses the already-verified raw webhook bytes. Decoding is the
// only step here that can fail: everything past the top-level object shape
// is optional and resolved by Extract.
func DecodeOrder(raw []byte) (models.ShopifyOrder, error) {
	var order models.ShopifyOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return models.ShopifyOrder{}, fmt.Errorf("decode order payload: %w", err)
	}
	return order, nil
}

// Extract maps a loosely-structured Shopify order onto the normalized record
// the notification pipeline consumes. Each field walks an explicit ordered
// candidate chain; missing optional fields fall through to defaults and
// never produce an error. An empty Phone on the result means no recipient
// was resolvable anywhere in the payload.
func Extract(order models.ShopifyOrder, defaultCountry string) models.OrderRecord {
	rec := models.OrderRecord{
		OrderID:      resolveOrderID(order),
		ItemSummary:  summarizeItems(order.LineItems),
		Token:        order.Token,
		CustomerName: defaultCustomerName,
		CountryCode:  defaultCountry,
	}

	if order.Customer != nil {
		if name, ok := firstPresent(order.Customer.FirstName); ok {
			rec.CustomerName = name
		}
	}

	if phone, ok := firstPresent(
		customerPhone(order.Customer),
		addressPhone(order.ShippingAddress),
		addressPhone(order.BillingAddress),
	); ok {
		rec.Phone = phone
	}

	if order.ShippingAddress != nil {
		if cc, ok := firstPresent(order.ShippingAddress.CountryCode); ok {
			rec.CountryCode = cc
		}
	}

	if rec.Token == "" {
		rec.Token = order.ID.String()
	}

	return rec
}

// firstPresent returns the first candidate with non-blank content. The
// explicit chain keeps the fallback order testable instead of burying it in
// short-circuit expressions.
func firstPresent(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}

func customerPhone(c *models.Customer) string {
	if c == nil {
		return ""
	}
	return c.Phone
}

func addressPhone(a *models.OrderAddress) string {
	if a == nil {
		return ""
	}
	return a.Phone
}

// resolveOrderID prefers the human-readable order name (Shopify already
// prefixes it, e.g. "#1001") and falls back to "#" plus the numeric id.
func resolveOrderID(order models.ShopifyOrder) string {
	if name, ok := firstPresent(order.Name); ok {
		return name
	}
	return "#" + order.ID.String()
}

// summarizeItems renders line items as "2 x Widget, 1 x Gadget". The string
// fills a single template placeholder, so an order with no items gets a
// sentinel summary rather than an empty parameter.
func summarizeItems(items []models.LineItem) string {
	if len(items) == 0 {
		return defaultItemSummary
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%d x %s", item.Quantity, item.Name))
	}
	return strings.Join(parts, ", ")
}
