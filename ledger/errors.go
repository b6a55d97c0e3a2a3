// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCandidate  = errors.New("unknown candidate")
	ErrAlreadyVoted      = errors.New("identity has already voted")
	ErrDuplicateIdentity = errors.New("identity already recorded")
	ErrInvalidState      = errors.New("invalid ledger state")
	ErrPersistenceLoad   = errors.New("failed to load ledger state")
	ErrPersistenceSave   = errors.New("failed to save ledger state")
	ErrEmptyIdentity     = errors.New("identity token is empty")
)

// UnknownCandidateError is returned when a vote names a candidate that is not configured.
type UnknownCandidateError struct {
	CandidateID string
}

func (e *UnknownCandidateError) Error() string {
	return fmt.Sprintf("unknown candidate %q", e.CandidateID)
}

func (e *UnknownCandidateError) Is(target error) bool { return target == ErrUnknownCandidate }

// AlreadyVotedError is returned when an identity tries to vote a second time.
// Identity holds the normalized token; it is kept out of the message so the
// error can be logged safely.
type AlreadyVotedError struct {
	Identity string
}

func (e *AlreadyVotedError) Error() string { return ErrAlreadyVoted.Error() }

func (e *AlreadyVotedError) Is(target error) bool { return target == ErrAlreadyVoted }

// DuplicateIdentityError guards the identity ledger against a second record of
// the same token. The coordinator checks membership first, so callers never see it.
type DuplicateIdentityError struct {
	Identity string
}

func (e *DuplicateIdentityError) Error() string { return ErrDuplicateIdentity.Error() }

func (e *DuplicateIdentityError) Is(target error) bool { return target == ErrDuplicateIdentity }

// InvalidStateError reports restored state that does not fit the configuration.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.Reason)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// PersistenceLoadError wraps a failed Load. It is recoverable: the coordinator
// starts from the default state instead.
type PersistenceLoadError struct {
	Err error
}

func (e *PersistenceLoadError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPersistenceLoad, e.Err)
}

func (e *PersistenceLoadError) Unwrap() error { return e.Err }

func (e *PersistenceLoadError) Is(target error) bool { return target == ErrPersistenceLoad }

// PersistenceSaveError wraps a failed Save. The vote it follows is still
// accepted; in-memory state stays authoritative.
type PersistenceSaveError struct {
	Err error
}

func (e *PersistenceSaveError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPersistenceSave, e.Err)
}

func (e *PersistenceSaveError) Unwrap() error { return e.Err }

func (e *PersistenceSaveError) Is(target error) bool { return target == ErrPersistenceSave }
