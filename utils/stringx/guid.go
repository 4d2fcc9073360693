// File: guid.go
// Title: GUID Helpers
// Description: Recognises, normalises and generates RFC 4122 identifiers on
//              top of github.com/google/uuid.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"github.com/google/uuid"

	"github.com/msto63/extkit/core/errors"
)

// IsGUID reports whether s parses as a GUID in any of the accepted forms:
// canonical, braced, URN or 32 bare hex digits
func IsGUID(s string) bool {
	return uuid.Validate(s) == nil
}

// ToGUID parses s and returns it in canonical lowercase form
func ToGUID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", errors.InvalidFormat(errors.ModuleStringx, "ToGUID", s, "GUID", err)
	}
	return id.String(), nil
}

// NewGUIDString returns a random (version 4) GUID
func NewGUIDString() string {
	return uuid.NewString()
}
