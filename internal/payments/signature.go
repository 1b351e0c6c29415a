package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the hex HMAC-SHA256 of "orderID|paymentID" under the
// gateway callback secret.
func Signature(orderID, paymentID string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether got is the signature the gateway would
// have produced. The comparison is constant time.
func VerifySignature(orderID, paymentID, got string, secret []byte) bool {
	want := Signature(orderID, paymentID, secret)
	return hmac.Equal([]byte(want), []byte(got))
}
