// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives the opaque identifiers the API hands out and logs.

There is no real identity verification. The package only keeps raw
national IDs and client IPs out of logs and gives voters something short to
quote for their vote.

# Identity Hashing

HashIdentity returns a salted HMAC-SHA256 prefix of a normalized identity:

	slog.Info("vote accepted", "identity", auth.HashIdentity(nid, cfg.IdentitySalt))

# Tracking Codes

Every accepted vote gets a UUID transaction ID from the ledger.
TrackingCode turns it into a short base62 string:

	code := auth.TrackingCode(receipt.TransactionID, cfg.IdentitySalt)

# Request IDs

NewRequestID returns a random UUID used by middleware.WithLogging.
*/
package auth
