package common

import "errors"

// Sentinel errors for the sale-processing and inventory subsystem. Callers
// wrap them with fmt.Errorf("...: %w", err) to attach detail and handlers
// match with errors.Is.
var (
	// ErrInsufficientStock is a business-rule rejection: the requested
	// quantity exceeds what the ledger holds. Retrying without a fresh
	// stock read would be incorrect, so the core never retries.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrUnknownItem and ErrUnknownStore indicate a broken reference in a
	// sale request.
	ErrUnknownItem  = errors.New("unknown clothing item")
	ErrUnknownStore = errors.New("unknown store")

	// ErrUnknownInventoryRecord means an item has no ledger row. Every
	// item is supposed to have exactly one, so this is a data-integrity
	// failure, not a condition to skip over.
	ErrUnknownInventoryRecord = errors.New("unknown inventory record")

	// ErrReferentialIntegrityViolation blocks deletes of owner rows that
	// still have dependent children (designer -> collections).
	ErrReferentialIntegrityViolation = errors.New("referential integrity violation")
)
