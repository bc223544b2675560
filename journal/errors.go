package journal

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUnknownAccount   = errors.New("unknown account")

	// ErrPersist marks a mutation that was applied in memory but could not
	// be written to the backend.
	ErrPersist = errors.New("persist document")

	ErrImport              = errors.New("import failed")
	ErrUnrecognizedPayload = fmt.Errorf("%w: payload has neither accounts nor account+data", ErrImport)

	ErrCorruptDocument = errors.New("stored document is corrupt")
)
