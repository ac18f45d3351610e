package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfiedler-labs/lumen/object"
)

func TestUnlessMacroExpansion(t *testing.T) {
	in := NewInterpreter()
	run(t, in, "(defmacro unless [c t e] `(if ~c ~e ~t))")
	assert.Equal(t, object.String("a"), run(t, in, `(unless (= 1 0) "a" "b")`))
	assert.Equal(t, object.String("b"), run(t, in, `(unless (= 1 1) "a" "b")`))
}

func TestMacroArgumentsAreNotEvaluatedEarly(t *testing.T) {
	in := NewInterpreter()
	run(t, in, "(defmacro my-if [c t e] `(if ~c ~e ~t))")
	// The false branch of an ordinary call would error evaluating the
	// unbound symbol; a macro must not evaluate its arguments until the
	// expanded code actually calls for them.
	assert.Equal(t, object.Number(1), run(t, in, "(my-if false 1 undefined-thing)"))
}

func TestMacroHygieneDoesNotCaptureCallerBinding(t *testing.T) {
	in := NewInterpreter()
	// my-or introduces its own local temporary named tmp; a caller whose
	// own (lexically scoped) tmp happens to share that name must still
	// see its own binding through the ~a forwarding, not the macro's.
	run(t, in, "(defmacro my-or [a b] `(let [tmp ~a] (if tmp tmp ~b)))")
	assert.Equal(t, object.Number(99), run(t, in, "(let [tmp 99] (my-or tmp 5))"))
	assert.Equal(t, object.Number(7), run(t, in, "(let [tmp false] (my-or tmp 7))"))
}

func TestMacroCanReferenceGlobalsByName(t *testing.T) {
	in := NewInterpreter()
	run(t, in, "(defn helper [x] (+ x 1))")
	run(t, in, "(defmacro call-helper [x] `(helper ~x))")
	assert.Equal(t, object.Number(6), run(t, in, "(call-helper 5)"))
}

func TestMacroExpansionDepthGuard(t *testing.T) {
	in := NewInterpreter()
	run(t, in, "(defmacro loop-forever [x] `(loop-forever ~x))")
	_, err := in.Eval(parseOne(t, "(loop-forever 1)"), in.Root)
	assert := assert.New(t)
	assert.NotNil(err)
}
