package boundary

import (
	"fmt"

	"github.com/usnistgov/pivcheck/piv/tlv"
)

// TagRule is a Rule associated with a data element tag.
type TagRule struct {
	Tag tlv.Tag `json:"tag"`
	// Name is the data element name in SP 800-73-4.
	Name string `json:"name"`
	Rule
}

// Ruleset contains length rules of one container.
// It is immutable after construction.
type Ruleset struct {
	container string
	list      []TagRule
	index     map[tlv.Tag]int
}

// NewRuleset constructs a Ruleset.
// Rules should appear in SP 800-73-4 table order; each tag may appear only once.
func NewRuleset(container string, rules ...TagRule) (rs *Ruleset, e error) {
	rs = &Ruleset{
		container: container,
		list:      append([]TagRule(nil), rules...),
		index:     map[tlv.Tag]int{},
	}
	for i, tr := range rs.list {
		if tr.Tag.IsZero() {
			return nil, fmt.Errorf("ruleset %s: rule %d has no tag", container, i)
		}
		if !tr.Rule.Valid() {
			return nil, fmt.Errorf("ruleset %s: tag %v has invalid rule %v", container, tr.Tag, tr.Rule)
		}
		if _, dup := rs.index[tr.Tag]; dup {
			return nil, fmt.Errorf("ruleset %s: duplicate tag %v", container, tr.Tag)
		}
		rs.index[tr.Tag] = i
	}
	return rs, nil
}

// Container returns the canonical container name.
func (rs *Ruleset) Container() string {
	return rs.container
}

// Len returns number of rules.
func (rs *Ruleset) Len() int {
	return len(rs.list)
}

// Rules returns all rules in table order.
func (rs *Ruleset) Rules() []TagRule {
	return append([]TagRule(nil), rs.list...)
}

// Has determines whether the ruleset has a rule for the tag.
func (rs *Ruleset) Has(tag tlv.Tag) bool {
	_, ok := rs.index[tag]
	return ok
}

// Get finds the rule of a tag.
func (rs *Ruleset) Get(tag tlv.Tag) (tr TagRule, ok bool) {
	i, ok := rs.index[tag]
	if !ok {
		return TagRule{}, false
	}
	return rs.list[i], true
}

// MaxSize returns the sum of upper bounds of all rules.
// This excludes tag and length octets.
func (rs *Ruleset) MaxSize() (n int) {
	for _, tr := range rs.list {
		n += tr.High
	}
	return n
}
