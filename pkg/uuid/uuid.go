// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for the platform.

Version 7 values sort by creation time, which keeps request ids and
generated product ids roughly ordered in logs and fixtures.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// If the entropy source fails it falls back to a random v4 value instead of
// panicking; callers only need uniqueness.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
