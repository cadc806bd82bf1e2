// Package mpointers provides small helpers for taking the address of a
// literal, used where optional columns are modeled as pointers (the
// flow engine's Transaction.ReferenceID and Transaction.IdempotencyKey).
package mpointers

import "github.com/google/uuid"

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// UUID returns a pointer to id.
func UUID(id uuid.UUID) *uuid.UUID { return &id }
