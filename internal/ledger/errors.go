package ledger

import (
	"errors" // Error wrapping and sentinel checks
	"fmt"    // Message formatting

	"gorm.io/gorm" // GORM sentinel errors
)

// Kind classifies every failure the ledger can surface to a caller.
type Kind string

const (
	KindConnection   Kind = "connection"   // Cannot reach the store
	KindValidation   Kind = "validation"   // Caller input failed a local rule, no statement ran
	KindNotFound     Kind = "not_found"    // Referenced key does not exist
	KindPrecondition Kind = "precondition" // Domain invariant violated
	KindConstraint   Kind = "constraint"   // The store rejected a write despite passing local checks
	KindQuery        Kind = "query"        // Read or write statement failed
	KindCommit       Kind = "commit"       // Commit failed
	KindRollback     Kind = "rollback"     // Rollback failed
)

// Error is the single classified failure type that crosses an operation
// boundary. Exactly one of Entity or Rule is set depending on the kind.
type Error struct {
	Kind   Kind   // Failure classification
	Entity string // Missing entity name for not-found failures
	Rule   string // Human-readable rule for validation and precondition failures
	Err    error  // Underlying store error, if any
}

// Error renders the classified failure as a human-readable message
func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found", e.Entity)
	case KindValidation, KindPrecondition:
		return e.Rule
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("%s error", e.Kind)
	}
}

// Unwrap exposes the underlying store error for errors.Is checks
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that a referenced entity does not exist
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity}
}

// Precondition reports a domain invariant violation detected before any
// write took effect
func Precondition(rule string) *Error {
	return &Error{Kind: KindPrecondition, Rule: rule}
}

// Validation reports a caller input failing a local rule before any
// statement ran
func Validation(rule string) *Error {
	return &Error{Kind: KindValidation, Rule: rule}
}

// KindOf returns the classification of err, or the empty Kind when err is nil
// or was produced outside the ledger.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}

// queryErr wraps a failed read
func queryErr(err error) *Error {
	return &Error{Kind: KindQuery, Err: err}
}

// classifyWrite maps a failed write onto the taxonomy. Constraint rejections
// are separated out because local precondition checks should have caught the
// condition first; they are logged as unexpected by the operations.
func classifyWrite(err error) *Error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &Error{Kind: KindConstraint, Err: err}
	case errors.Is(err, gorm.ErrInvalidTransaction):
		return &Error{Kind: KindConnection, Err: err}
	default:
		return &Error{Kind: KindQuery, Err: err}
	}
}

// ensureClassified guarantees that no unclassified error escapes an
// operation boundary
func ensureClassified(err error) error {
	if err == nil {
		return nil
	}
	var le *Error
	if errors.As(err, &le) {
		return err
	}
	return queryErr(err)
}
