package caller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTrace = `goroutine 18 [running]:
github.com/reflectkit/introspector/caller.captureStack()
	/src/caller/stack.go:41 +0x65
github.com/reflectkit/introspector/caller.(*stackStrategy).frameAt(0x0?, 0x3)
	/src/caller/stack.go:28 +0x1d
github.com/reflectkit/introspector/caller.helper(...)
	/src/caller/helper.go:7
panic({0x5c7a40?, 0xc0000a2010?}) [recovered]
	/usr/local/go/src/runtime/panic.go:770 +0x132
testing.tRunner(0xc000007860, 0x5d2b18)
	/usr/local/go/src/testing/testing.go:1689 +0xfb
created by testing.(*T).Run in goroutine 1
	/usr/local/go/src/testing/testing.go:1742 +0x390
`

func TestParseStack(t *testing.T) {
	frames := parseStack([]byte(sampleTrace))
	require.Len(t, frames, 5)

	assert.Equal(t, "github.com/reflectkit/introspector/caller.captureStack", frames[0].Function)
	assert.Equal(t, "/src/caller/stack.go", frames[0].File)
	assert.Equal(t, 41, frames[0].Line)

	assert.Equal(t, "stackStrategy", frames[1].Receiver)
	assert.Equal(t, "frameAt", frames[1].Name)

	assert.Equal(t, "github.com/reflectkit/introspector/caller.helper", frames[2].Function)
	assert.Equal(t, 7, frames[2].Line, "inlined frames have no pc offset")

	assert.Equal(t, "panic", frames[3].Function)
	assert.Equal(t, "testing.tRunner", frames[4].Function)
	assert.Equal(t, "testing", frames[4].Package)

	for _, f := range frames {
		assert.Equal(t, StrategyStack, f.Strategy)
	}
}

func TestParseStack_Elided(t *testing.T) {
	trace := "goroutine 1 [running]:\nmain.a()\n\t/x/a.go:3 +0x1\n...additional frames elided...\n"
	frames := parseStack([]byte(trace))
	require.Len(t, frames, 1)
	assert.Equal(t, "main.a", frames[0].Function)
}

func TestParseLocation(t *testing.T) {
	file, line := parseLocation("\t/src/a b/c.go:12 +0x1d")
	assert.Equal(t, "/src/a b/c.go", file)
	assert.Equal(t, 12, line)

	file, line = parseLocation("\tC:/src/c.go:9")
	assert.Equal(t, "C:/src/c.go", file)
	assert.Equal(t, 9, line)

	file, line = parseLocation("\t?")
	assert.Equal(t, "?", file)
	assert.Zero(t, line)
}

func TestStackStrategy_FrameAtBounds(t *testing.T) {
	s := StackStrategy()

	_, err := s.frameAt(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = s.frameAt(1 << 20)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestRuntimeStrategy_FrameAtBounds(t *testing.T) {
	s := RuntimeStrategy()
	require.NoError(t, s.Check())

	_, err := s.frameAt(-1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = s.frameAt(1 << 20)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
