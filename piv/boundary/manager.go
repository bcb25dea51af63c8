package boundary

import (
	"fmt"
	"sort"
	"sync"

	"github.com/usnistgov/pivcheck/piv/container"
	"github.com/usnistgov/pivcheck/piv/tlv"
	"go.uber.org/zap"
)

// Verdict is the result of checking a data element length.
type Verdict struct {
	// Container is the canonical container name.
	Container string  `json:"container"`
	Tag       tlv.Tag `json:"tag"`
	Length    int     `json:"length"`
	Rule      Rule    `json:"rule"`
	Outcome   Outcome `json:"outcome"`
	// SoftOverride indicates a failed Outcome was accepted because the rule has a soft upper bound.
	SoftOverride bool `json:"softOverride,omitempty"`
}

// Pass determines whether the data element is accepted.
func (v Verdict) Pass() bool {
	return v.Outcome.Pass || v.SoftOverride
}

// Manager holds length rules of all containers.
// It is immutable after construction and safe for concurrent use.
type Manager struct {
	rulesets map[string]*Ruleset
}

// NewManager constructs a Manager.
// Ruleset container names are normalized with container.Resolve.
func NewManager(rulesets ...*Ruleset) (m *Manager, e error) {
	m = &Manager{
		rulesets: map[string]*Ruleset{},
	}
	for _, rs := range rulesets {
		name := container.Resolve(rs.Container())
		if _, dup := m.rulesets[name]; dup {
			return nil, fmt.Errorf("duplicate ruleset %s", name)
		}
		m.rulesets[name] = rs
	}
	return m, nil
}

// Containers returns canonical names of containers with rulesets, sorted alphabetically.
func (m *Manager) Containers() (names []string) {
	for name := range m.rulesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ruleset finds the ruleset of a container.
// id can be any identifier accepted by container.Resolve.
func (m *Manager) Ruleset(id string) (rs *Ruleset, e error) {
	rs, ok := m.rulesets[container.Resolve(id)]
	if !ok {
		return nil, &SchemaError{Container: id, Err: ErrNoRuleset}
	}
	return rs, nil
}

// Check evaluates a data element length against the rule of its tag in a container.
// It returns a *SchemaError if no rule applies.
// A failed rule with soft upper bound is accepted and logged.
// Otherwise, a failed rule returns the Verdict with a *ValidationError.
func (m *Manager) Check(id string, tag tlv.Tag, length int) (v Verdict, e error) {
	rs, e := m.Ruleset(id)
	if e != nil {
		return Verdict{}, e
	}
	tr, ok := rs.Get(tag)
	if !ok {
		return Verdict{}, &SchemaError{Container: rs.Container(), Tag: tag, Err: ErrNoRule}
	}

	v = Verdict{
		Container: rs.Container(),
		Tag:       tag,
		Length:    length,
		Rule:      tr.Rule,
		Outcome:   tr.Rule.Evaluate(length),
	}
	switch {
	case v.Outcome.Pass:
		return v, nil
	case tr.Soft:
		v.SoftOverride = true
		logger.Info("length exceeds soft upper bound",
			zap.String("container", v.Container),
			zap.Stringer("tag", tag),
			zap.String("element", tr.Name),
			zap.Int("length", length),
			zap.Stringer("rule", tr.Rule),
			zap.Stringer("outcome", v.Outcome),
		)
		return v, nil
	}
	return v, &ValidationError{Verdict: v}
}

// LengthDelta validates a data element length.
// It returns nil if the length is accepted, *SchemaError if no rule applies,
// or *ValidationError carrying the rule outcome.
func (m *Manager) LengthDelta(id string, tag tlv.Tag, length int) error {
	_, e := m.Check(id, tag, length)
	return e
}

var (
	defaultOnce    sync.Once
	defaultManager *Manager
)

// Default returns the catalogue of SP 800-73-4 rules.
// It is built on first use.
func Default() *Manager {
	defaultOnce.Do(func() {
		m, e := NewManager(tables()...)
		if e != nil {
			panic(e)
		}
		defaultManager = m
	})
	return defaultManager
}

// LengthDelta validates a data element length with the Default catalogue.
func LengthDelta(id string, tag tlv.Tag, length int) error {
	return Default().LengthDelta(id, tag, length)
}
