package boundary

import (
	"errors"
	"fmt"

	"github.com/usnistgov/pivcheck/piv/tlv"
)

// Error conditions.
var (
	ErrNoRuleset = errors.New("no ruleset for container")
	ErrNoRule    = errors.New("no rule for tag")
	ErrLength    = errors.New("length out of bounds")
)

// SchemaError indicates the rule tables do not cover a container or tag.
// This is a defect in the caller or the tables, not in card data.
type SchemaError struct {
	Container string
	Tag       tlv.Tag
	Err       error
}

func (e *SchemaError) Error() string {
	if e.Err == ErrNoRuleset {
		return fmt.Sprintf("%v: %s", e.Err, e.Container)
	}
	return fmt.Sprintf("%v: %s %v", e.Err, e.Container, e.Tag)
}

// Unwrap returns ErrNoRuleset or ErrNoRule.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ValidationError indicates a data element length does not satisfy its rule.
type ValidationError struct {
	Verdict
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %v length %d, rule %v, %v", ErrLength, e.Container, e.Tag, e.Length, e.Rule, e.Outcome)
}

// Unwrap returns ErrLength.
func (e *ValidationError) Unwrap() error {
	return ErrLength
}
