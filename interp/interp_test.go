package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsValueLines(t *testing.T) {
	s := NewSession()
	lines := s.Run("(+ 1 2) (* 2 3)")
	require.Len(t, lines, 3)
	assert.Equal(t, Value, lines[0].Kind)
	assert.Equal(t, "3", lines[0].Text)
	assert.Equal(t, Value, lines[1].Kind)
	assert.Equal(t, "6", lines[1].Text)
	assert.Equal(t, Time, lines[2].Kind)
}

func TestRunSuppressesNilAtTopLevel(t *testing.T) {
	s := NewSession()
	lines := s.Run("(def x 1) 2")
	require.Len(t, lines, 2)
	assert.Equal(t, Value, lines[0].Kind)
	assert.Equal(t, "2", lines[0].Text)
}

func TestRunCollectsErrorsButContinues(t *testing.T) {
	s := NewSession()
	lines := s.Run("(+ 1 \"a\") 42")
	require.Len(t, lines, 3)
	assert.Equal(t, Error, lines[0].Kind)
	assert.Equal(t, Value, lines[1].Kind)
	assert.Equal(t, "42", lines[1].Text)
}

func TestRunReportsSingleErrorOnParseFailure(t *testing.T) {
	s := NewSession()
	lines := s.Run("(+ 1 2")
	require.Len(t, lines, 1)
	assert.Equal(t, Error, lines[0].Kind)
}

func TestPrintSinkCapturesOutput(t *testing.T) {
	s := NewSession()
	var out strings.Builder
	s.SetPrintSink(func(text string) { out.WriteString(text) })
	s.Run(`(print "hi")`)
	assert.Equal(t, "hi\n", out.String())
}
