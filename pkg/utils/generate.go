package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// GenerateRequestID returns a unique id attached to every HTTP request.
func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateBookingCode creates a human-facing booking code like "SC12345".
// Five random digits only; callers needing real uniqueness must check the
// store and re-roll.
func GenerateBookingCode() string {
	return fmt.Sprintf("SC%d", 10000+rand.Intn(90000))
}
