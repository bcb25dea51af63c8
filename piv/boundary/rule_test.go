package boundary_test

import (
	"testing"

	"github.com/usnistgov/pivcheck/core/testenv"
	"github.com/usnistgov/pivcheck/piv/boundary"
)

var makeAR = testenv.MakeAR

func TestRuleFixed(t *testing.T) {
	assert, _ := makeAR(t)

	r := boundary.FixedRule(16)
	assert.True(r.Valid())
	assert.Equal("fixed(16)", r.String())

	o := r.Evaluate(16)
	assert.True(o.Pass)
	assert.False(o.HasDelta())
	assert.Equal("pass", o.String())

	for _, length := range []int{0, 15, 17} {
		o = r.Evaluate(length)
		assert.False(o.Pass, length)
		assert.False(o.HasDelta(), length)
		assert.Zero(o.Delta, length)
		assert.Equal("not fixed length", o.String())
	}
}

func TestRuleVariable(t *testing.T) {
	assert, _ := makeAR(t)

	r := boundary.VariableRule(4, 128)
	assert.Equal("variable(4,128)", r.String())

	tests := []struct {
		length int
		pass   bool
		delta  int
	}{
		{0, false, -4},
		{3, false, -1},
		{4, true, 0},
		{64, true, 0},
		{128, true, 0},
		{129, false, 1},
		{200, false, 72},
	}
	for _, tt := range tests {
		o := r.Evaluate(tt.length)
		assert.Equal(tt.pass, o.Pass, tt.length)
		assert.Equal(!tt.pass, o.HasDelta(), tt.length)
		assert.Equal(tt.delta, o.Delta, tt.length)
	}
	assert.Equal("delta +72", r.Evaluate(200).String())
	assert.Equal("delta -4", r.Evaluate(0).String())

	r = boundary.VariableRule(0, 128)
	assert.True(r.Evaluate(5).Pass)
	assert.Equal(72, r.Evaluate(200).Delta)
}

func TestRuleOr(t *testing.T) {
	assert, _ := makeAR(t)

	r := boundary.OrRule(0, 21)
	assert.Equal("or(0,21)", r.String())

	assert.True(r.Evaluate(0).Pass)
	assert.True(r.Evaluate(21).Pass)
	assert.Zero(r.Evaluate(21).Code)

	o := r.Evaluate(10)
	assert.False(o.Pass)
	assert.False(o.HasDelta())
	assert.EqualValues(boundary.OrNotLow|boundary.OrNotHigh, o.Code)
	assert.EqualValues(0b11, o.Code)
	assert.Equal("code 11", o.String())
}

func TestRuleValid(t *testing.T) {
	assert, _ := makeAR(t)

	assert.False(boundary.Rule{}.Valid())
	assert.False(boundary.VariableRule(10, 5).Valid())
	assert.False(boundary.FixedRule(-1).Valid())
	assert.True(boundary.OrRule(0, 0).Valid())

	soft := boundary.SoftVariableRule(0, 1858)
	assert.True(soft.Valid())
	assert.True(soft.Soft)
	assert.Equal("variable(0,1858)~", soft.String())
}
