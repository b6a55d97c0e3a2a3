// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"strings"
)

// ErrInvalidNID is returned by ValidateNID for a malformed national ID.
var ErrInvalidNID = errors.New("NID must be 10, 13 or 17 digits")

// ValidateNID strips spaces and hyphens and checks that what remains is a
// 10, 13 or 17 digit national ID. It returns the stripped form.
func ValidateNID(raw string) (string, error) {
	nid := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, raw)

	switch len(nid) {
	case 10, 13, 17:
	default:
		return "", ErrInvalidNID
	}
	for i := 0; i < len(nid); i++ {
		if nid[i] < '0' || nid[i] > '9' {
			return "", ErrInvalidNID
		}
	}
	return nid, nil
}
