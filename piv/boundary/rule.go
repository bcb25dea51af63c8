package boundary

import (
	"fmt"
)

// Kind is the kind of a length rule.
type Kind uint8

// Rule kinds.
const (
	_ Kind = iota
	// Fixed requires length equal to Low and High.
	Fixed
	// Or requires length equal to Low or High, typically "absent (0) or exactly N".
	Or
	// Variable requires length between Low and High, inclusive.
	Variable
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Or:
		return "or"
	case Variable:
		return "variable"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Or failure code bits.
const (
	// OrNotLow is set in Outcome.Code if length differs from Low.
	OrNotLow = 1 << 1
	// OrNotHigh is set in Outcome.Code if length differs from High.
	OrNotHigh = 1 << 0
)

// Rule is a length constraint on a data element.
type Rule struct {
	Kind Kind `json:"kind"`
	Low  int  `json:"low"`
	High int  `json:"high"`
	// Soft indicates High may be legitimately exceeded, such as when an embedded
	// content signing certificate enlarges a biometric record.
	Soft bool `json:"soft,omitempty"`
}

// FixedRule creates a Fixed rule.
func FixedRule(n int) Rule {
	return Rule{Kind: Fixed, Low: n, High: n}
}

// OrRule creates an Or rule.
func OrRule(low, high int) Rule {
	return Rule{Kind: Or, Low: low, High: high}
}

// VariableRule creates a Variable rule.
func VariableRule(low, high int) Rule {
	return Rule{Kind: Variable, Low: low, High: high}
}

// SoftVariableRule creates a Variable rule whose upper bound is soft.
func SoftVariableRule(low, high int) Rule {
	return Rule{Kind: Variable, Low: low, High: high, Soft: true}
}

// Valid checks whether the rule is well-formed.
func (r Rule) Valid() bool {
	switch r.Kind {
	case Fixed, Or, Variable:
		return r.Low >= 0 && r.High >= r.Low
	}
	return false
}

func (r Rule) String() string {
	var s string
	switch r.Kind {
	case Fixed:
		s = fmt.Sprintf("fixed(%d)", r.High)
	case Or:
		s = fmt.Sprintf("or(%d,%d)", r.Low, r.High)
	default:
		s = fmt.Sprintf("%v(%d,%d)", r.Kind, r.Low, r.High)
	}
	if r.Soft {
		s += "~"
	}
	return s
}

// Outcome is the result of evaluating a Rule.
type Outcome struct {
	Kind Kind `json:"kind"`
	Pass bool `json:"pass"`
	// Delta is the signed distance from the allowed range of a failed Variable rule:
	// negative if length is below Low, positive if length is above High.
	Delta int `json:"delta,omitempty"`
	// Code is the failure code of an Or rule, a combination of OrNotLow and OrNotHigh.
	Code uint8 `json:"code,omitempty"`
}

// HasDelta returns true if the outcome carries a magnitude.
// Failed Fixed rules carry no magnitude.
func (o Outcome) HasDelta() bool {
	return !o.Pass && o.Kind == Variable
}

func (o Outcome) String() string {
	switch {
	case o.Pass:
		return "pass"
	case o.Kind == Variable:
		return fmt.Sprintf("delta %+d", o.Delta)
	case o.Kind == Or:
		return fmt.Sprintf("code %02b", o.Code)
	}
	return "not fixed length"
}

// Evaluate checks a value length against the rule.
func (r Rule) Evaluate(length int) (o Outcome) {
	o.Kind = r.Kind
	switch r.Kind {
	case Fixed:
		o.Pass = length == r.Low && length == r.High
	case Variable:
		switch {
		case length < r.Low:
			o.Delta = length - r.Low
		case length > r.High:
			o.Delta = length - r.High
		}
		o.Pass = o.Delta == 0
	case Or:
		if length != r.Low {
			o.Code |= OrNotLow
		}
		if length != r.High {
			o.Code |= OrNotHigh
		}
		o.Pass = o.Code&OrNotLow == 0 || o.Code&OrNotHigh == 0
		if o.Pass {
			o.Code = 0
		}
	}
	return o
}
