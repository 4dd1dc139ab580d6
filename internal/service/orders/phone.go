package orders

import (
	"strings"

	"go.uber.org/zap"
)

// callingCodes maps ISO 3166-1 alpha-2 regions to their international
// dialing prefix. Covers the regions the storefronts we serve ship to;
// unknown regions fall back to the caller-provided default.
var callingCodes = map[string]string{
	"IN": "91",
	"GB": "44",
	"US": "1",
	"CA": "1",
	"AU": "61",
	"NZ": "64",
	"SN": "221",
	"GN": "224",
	"NG": "234",
	"GH": "233",
	"KE": "254",
	"ZA": "27",
	"AE": "971",
	"SG": "65",
	"MY": "60",
	"FR": "33",
	"DE": "49",
	"ES": "34",
	"IT": "39",
	"BR": "55",
}

// Normalizer converts raw phone candidates into E.164-style international
// numbers. It is best-effort: the webhook payload gives no guarantee about
// formatting, so sanitization is heuristic and never fails hard.
type Normalizer struct {
	defaultCountry string
	logger         *zap.Logger
}

// NewNormalizer builds a Normalizer that falls back to defaultCountry when
// an order carries no usable region.
func NewNormalizer(defaultCountry string, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{defaultCountry: defaultCountry, logger: logger}
}

// Normalize strips every non-digit from candidate, drops any leading trunk
// zeros, and prefixes the calling code for countryCode unless the digits
// already start with it. The result is always "+" followed by digits only.
// An empty sanitized candidate returns ok=false, which callers treat the
// same as an absent phone.
func (n *Normalizer) Normalize(candidate, countryCode string) (string, bool) {
	digits := stripNonDigits(candidate)
	if digits == "" {
		return "", false
	}

	// Trunk prefixes ("0987654321") are national notation; the calling code
	// replaces them in international form.
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "", false
	}
	if trimmed != digits {
		n.logger.Debug("dropped trunk prefix from phone candidate",
			zap.String("country_code", countryCode))
		digits = trimmed
	}

	code := n.callingCode(countryCode)
	if !strings.HasPrefix(digits, code) {
		digits = code + digits
	} else if countryCode == n.defaultCountry {
		// The region came from our configured default, not the order, so a
		// number already carrying the prefix is a guess we can't confirm.
		n.logger.Warn("phone already carries default-region calling code, assuming international form",
			zap.String("calling_code", code))
	}

	return "+" + digits, true
}

func (n *Normalizer) callingCode(countryCode string) string {
	if code, ok := callingCodes[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return code
	}

	n.logger.Warn("unknown country code, falling back to default region",
		zap.String("country_code", countryCode),
		zap.String("default_country", n.defaultCountry))

	if code, ok := callingCodes[n.defaultCountry]; ok {
		return code
	}
	return ""
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
