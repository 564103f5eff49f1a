package linger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecIsFiller(t *testing.T) {
	tests := []struct {
		experiment string
		filler     bool
	}{
		{"filler", true},
		{"filler1", true},
		{"fillers_easy", true},
		{"exp1", false},
		{"myfiller", false},
	}
	for _, tt := range tests {
		spec := Spec{Experiment: tt.experiment, Condition: "a"}
		assert.Equal(t, tt.filler, spec.IsFiller(), "experiment: %s", tt.experiment)
	}
}

func TestSpecConditionLabel(t *testing.T) {
	spec := Spec{Experiment: "exp1", Condition: "cond1", Item: 3}
	assert.Equal(t, "exp1_cond1", spec.ConditionLabel())
}

func TestParseErrorRendersLine(t *testing.T) {
	err := &ParseError{Message: "bad spec", Line: 12}
	assert.Equal(t, "line 12: bad spec", err.Error())

	err = &ParseError{Message: "bad spec"}
	assert.Equal(t, "bad spec", err.Error())
}
