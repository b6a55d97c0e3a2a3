// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewRequestID returns a random ID for correlating log lines of one request
func NewRequestID() string {
	return uuid.NewString()
}

// HashIdentity creates a one-way hash of an identity token for logs
// The same token and salt always give the same hash, so repeat attempts can
// be correlated without storing the national ID in log files
func HashIdentity(identity, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(identity))
	sum := h.Sum(nil)
	// First 12 hex chars are enough to tell voters apart in logs
	return hex.EncodeToString(sum[:6])
}

// TrackingCode derives a short, URL-friendly code from a transaction ID
// Voters can quote it instead of the full UUID
func TrackingCode(transactionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(transactionID))
	sum := h.Sum(nil)

	// Take first 8 bytes for a shorter code
	return base62Encode(sum[:8])
}

// base62Encode converts bytes to base62 (0-9, a-z, A-Z)
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Convert bytes to a big integer
	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	// Convert to base62
	result := make([]byte, 0, 11) // max length for uint64
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	// Reverse the string
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
