package dataobj

import (
	"github.com/usnistgov/pivcheck/piv/boundary"
	"github.com/usnistgov/pivcheck/piv/tlv"
	"go.uber.org/multierr"
)

// Report is the result of checking a data object.
type Report struct {
	// Container is the canonical container name.
	Container string `json:"container"`
	// Size is the data object size in octets, including any wrapper.
	Size int `json:"size"`
	// Verdicts contains one entry per checked data element, in order of appearance.
	Verdicts []boundary.Verdict `json:"verdicts"`
	// Absent lists tags in the container ruleset that did not appear.
	Absent []tlv.Tag `json:"absent,omitempty"`
}

func (r *Report) absent(rs *boundary.Ruleset) {
	seen := map[tlv.Tag]bool{}
	for _, v := range r.Verdicts {
		seen[v.Tag] = true
	}
	for _, tr := range rs.Rules() {
		if !seen[tr.Tag] {
			r.Absent = append(r.Absent, tr.Tag)
		}
	}
}

// Pass determines whether every data element is accepted.
func (r Report) Pass() bool {
	return len(r.Failures()) == 0
}

// Failures returns verdicts that are not accepted.
func (r Report) Failures() (list []boundary.Verdict) {
	for _, v := range r.Verdicts {
		if !v.Pass() {
			list = append(list, v)
		}
	}
	return list
}

// SoftOverrides returns verdicts accepted only because of a soft upper bound.
func (r Report) SoftOverrides() (list []boundary.Verdict) {
	for _, v := range r.Verdicts {
		if v.SoftOverride {
			list = append(list, v)
		}
	}
	return list
}

// Err combines a *boundary.ValidationError for each failure.
// Use multierr.Errors to retrieve them individually.
func (r Report) Err() (e error) {
	for _, v := range r.Failures() {
		e = multierr.Append(e, &boundary.ValidationError{Verdict: v})
	}
	return e
}
