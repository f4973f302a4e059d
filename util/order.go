// Package util provides small identifier helpers for the storefront.
package util

import (
	"crypto/rand"
	"fmt"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// OrderNumber returns an order identifier in the AMS<unix-millis> form.
func OrderNumber(now time.Time) string {
	return fmt.Sprintf("AMS%d", now.UnixMilli())
}

// TrackingNumber returns a TRK-prefixed identifier with nine random
// uppercase base-36 characters.
func TrackingNumber() string {
	b := make([]byte, 9)
	_, err := rand.Read(b)
	if err != nil {
		return "TRK000000000"
	}
	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}
	return "TRK" + string(b)
}
