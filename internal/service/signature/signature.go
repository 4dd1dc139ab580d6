package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Verify checks that claimedSignature is the base64-encoded HMAC-SHA256 of
// rawBody keyed by secret. Shopify computes the digest over the exact bytes
// it sent, so rawBody must be the request body as read off the wire; any
// re-serialization of a parsed payload changes key order or whitespace and
// fails verification even for semantically identical JSON.
//
// Missing signature or secret fails closed without computing a MAC. The
// comparison uses hmac.Equal so it runs in constant time.
func Verify(rawBody []byte, claimedSignature, secret string) bool {
	if claimedSignature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(claimedSignature))
}

// Sign returns the base64 HMAC-SHA256 digest of body under secret. Exposed
// for building signed requests in tests and tooling.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
