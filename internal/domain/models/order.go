package models

import "encoding/json"

// ShopifyOrder mirrors the subset of the Shopify orders/create webhook body
// the service consumes. All nested blocks are optional: merchants configure
// checkouts differently and the payload shape varies accordingly.
type ShopifyOrder struct {
	ID              json.Number   `json:"id"`
	Name            string        `json:"name"`
	Token           string        `json:"token"`
	Customer        *Customer     `json:"customer,omitempty"`
	ShippingAddress *OrderAddress `json:"shipping_address,omitempty"`
	BillingAddress  *OrderAddress `json:"billing_address,omitempty"`
	LineItems       []LineItem    `json:"line_items"`
}

// Customer carries the buyer profile attached to the order.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// OrderAddress is a shipping or billing address block.
type OrderAddress struct {
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
}

// LineItem is one purchased item.
type LineItem struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// OrderRecord is the normalized view of an order used by the notification
// pipeline. It is built once by the extractor and never mutated afterwards.
type OrderRecord struct {
	// OrderID is the human-readable order reference, e.g. "#1001".
	OrderID string
	// CustomerName is the buyer's first name, or a placeholder when absent.
	CustomerName string
	// Phone is the raw recipient candidate resolved from the fallback
	// chain. Empty means no recipient could be found anywhere in the
	// payload, which skips dispatch entirely.
	Phone string
	// CountryCode is the ISO 3166-1 alpha-2 region used for phone
	// normalization.
	CountryCode string
	// ItemSummary is a human-readable list such as "2 x Widget, 1 x Gadget".
	ItemSummary string
	// Token is the Shopify order token, bound to the template's order-token
	// parameter and, when the template has one, its URL button.
	Token string
}
