// Package dataobj validates PIV data objects returned by GET DATA.
package dataobj

import (
	"errors"

	"github.com/usnistgov/pivcheck/core/logging"
	"github.com/usnistgov/pivcheck/piv/boundary"
	"github.com/usnistgov/pivcheck/piv/tlv"
	"go.uber.org/zap"
)

var logger = logging.New("dataobj")

// TagDataObject is the '53' template that wraps most data objects in a GET DATA response.
var TagDataObject = tlv.MakeTag(0x53)

// Check parses a data object and validates every data element length against the rules of a container.
// m may be nil to use boundary.Default().
//
// A response consisting of a single '53' element is unwrapped.
// An element whose tag has a rule is checked and its value is not decoded further.
// Other constructed elements, such as '7E' and '7F61' templates, are descended.
//
// Decode errors and *boundary.SchemaError abort the check.
// Length violations are collected in the Report; see Report.Err.
func Check(m *boundary.Manager, container string, data []byte) (r Report, e error) {
	if m == nil {
		m = boundary.Default()
	}
	rs, e := m.Ruleset(container)
	if e != nil {
		return Report{}, e
	}

	p := tlv.Parser{Leaf: rs.Has}
	forest, e := p.Parse(data)
	if e != nil {
		return Report{}, e
	}
	if len(forest) == 1 && forest[0].Tag == TagDataObject {
		wrapper, e := p.ParseConstructed(data)
		if e != nil {
			return Report{}, e
		}
		forest = wrapper.Children
	}

	c := checker{
		m:  m,
		rs: rs,
		r: Report{
			Container: rs.Container(),
			Size:      len(data),
		},
	}
	if e = c.walk(forest, 0); e != nil {
		return Report{}, e
	}
	c.r.absent(rs)

	logger.Debug("checked",
		zap.String("container", c.r.Container),
		zap.Int("size", c.r.Size),
		zap.Int("elements", len(c.r.Verdicts)),
		zap.Int("failures", len(c.r.Failures())),
	)
	return c.r, nil
}

type checker struct {
	m  *boundary.Manager
	rs *boundary.Ruleset
	r  Report
}

func (c *checker) walk(forest tlv.Forest, depth int) error {
	for _, node := range forest {
		switch {
		case c.rs.Has(node.Tag):
			v, e := c.m.Check(c.rs.Container(), node.Tag, node.Length())
			var ve *boundary.ValidationError
			if e != nil && !errors.As(e, &ve) {
				return e
			}
			logger.Debug("element",
				zap.Stringer("tag", node.Tag),
				zap.Int("depth", depth),
				zap.Int("length", node.Length()),
				zap.Stringer("outcome", v.Outcome),
			)
			c.r.Verdicts = append(c.r.Verdicts, v)
		case node.IsConstructed():
			if e := c.walk(node.Children, depth+1); e != nil {
				return e
			}
		default:
			return &boundary.SchemaError{Container: c.rs.Container(), Tag: node.Tag, Err: boundary.ErrNoRule}
		}
	}
	return nil
}
