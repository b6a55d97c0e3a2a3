// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestID(t *testing.T) {
	id1 := NewRequestID()
	id2 := NewRequestID()

	if _, err := uuid.Parse(id1); err != nil {
		t.Errorf("NewRequestID() = %q is not a UUID: %v", id1, err)
	}
	if id1 == id2 {
		t.Error("NewRequestID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestHashIdentity(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		salt     string
	}{
		{"standard", "1234567890", "secret-salt"},
		{"long nid", "12345678901234567", "salt"},
		{"empty salt", "1234567890", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HashIdentity(tt.identity, tt.salt)

			if len(h) != 12 {
				t.Errorf("HashIdentity() length = %d, want 12", len(h))
			}
			if strings.Contains(h, tt.identity) {
				t.Error("HashIdentity() leaks the identity")
			}
			if h != HashIdentity(tt.identity, tt.salt) {
				t.Error("HashIdentity() is not deterministic")
			}
			if h == HashIdentity(tt.identity, tt.salt+"x") {
				t.Error("HashIdentity() ignores the salt")
			}
		})
	}
}

func TestTrackingCode(t *testing.T) {
	txID := uuid.NewString()
	code := TrackingCode(txID, "salt")

	if code == "" || len(code) > 11 {
		t.Errorf("TrackingCode() = %q, want 1-11 chars", code)
	}
	for _, c := range code {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			t.Errorf("TrackingCode() contains non-base62 char %q", c)
		}
	}
	if code != TrackingCode(txID, "salt") {
		t.Error("TrackingCode() is not deterministic")
	}
	if code == TrackingCode(uuid.NewString(), "salt") {
		t.Error("TrackingCode() collided for different transactions (extremely unlikely)")
	}
}

func TestBase62Encode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"zero", []byte{0}, "0"},
		{"one", []byte{1}, "1"},
		{"sixty-one", []byte{61}, "Z"},
		{"sixty-two", []byte{62}, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base62Encode(tt.data); got != tt.want {
				t.Errorf("base62Encode(%v) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	h := HashIP("192.168.1.1", "salt")
	if len(h) != 16 {
		t.Errorf("HashIP() length = %d, want 16", len(h))
	}
	if h != HashIP("192.168.1.1", "salt") {
		t.Error("HashIP() is not deterministic")
	}
	if h == HashIP("192.168.1.2", "salt") {
		t.Error("HashIP() same hash for different IPs")
	}
}
