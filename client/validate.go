package client

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidateMBID validates that id is a syntactically valid MBID (a UUID).
// Lookup calls this before any I/O; a failure here is a caller bug, never a
// network condition.
func ValidateMBID(id string) error {
	if id == "" {
		return fmt.Errorf("mbid is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("mbid %q is not a valid UUID", id)
	}
	return nil
}
