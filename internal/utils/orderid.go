package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// MaxOrderIDLength is the longest OrderID the gateway accepts.
const MaxOrderIDLength = 27

// GenerateOrderID returns an OrderID of the form ORD-YYYYMMDDhhmmss-mmm-rrrr
// (27 characters, alphanumerics and '-').
func GenerateOrderID() string {
	return orderIDAt(time.Now().UTC())
}

func orderIDAt(now time.Time) string {
	datePart := now.Format("20060102150405")
	millis := now.Nanosecond() / int(time.Millisecond)

	// 4-digit cryptographic random
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("ORD-%s-%03d-%04d", datePart, millis, n.Int64())
}
