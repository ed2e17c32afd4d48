package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifySignature checks a gateway payment proof: the provided signature
// must equal the hex HMAC-SHA256 of "orderID|paymentID" under the shared
// secret. The comparison is constant-time. Callers must not log the secret
// or the computed digest.
func VerifySignature(orderID, paymentID, providedSignature, secret string) bool {
	if orderID == "" || paymentID == "" || providedSignature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(strings.TrimSpace(providedSignature))
	if err != nil {
		return false
	}
	return hmac.Equal(expected, provided)
}
