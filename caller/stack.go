package caller

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/reflectkit/introspector/utils"
)

const initialStackBuffer = 4 << 10

// StackStrategy returns the strategy that parses the goroutine trace
// produced by runtime.Stack. It is always available.
func StackStrategy() Strategy {
	return &stackStrategy{}
}

type stackStrategy struct{}

func (*stackStrategy) Name() string { return StrategyStack }

func (*stackStrategy) Check() error { return nil }

//go:noinline
func (*stackStrategy) frameAt(skip int) (Identity, error) {
	frames := parseStack(captureStack())
	if !utils.IsIndex(skip, len(frames)) {
		return Identity{}, fmt.Errorf("%w: index %d, stack depth %d", ErrOutOfBounds, skip, len(frames))
	}

	return frames[skip], nil
}

// captureStack formats the current goroutine's trace, growing the buffer
// until the whole trace fits.
//
//go:noinline
func captureStack() []byte {
	buf := make([]byte, initialStackBuffer)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}

// parseStack turns a single goroutine trace into frames, innermost first.
// The layout is one function line followed by a tab-indented location line:
//
//	goroutine 7 [running]:
//	example.com/pkg.(*T).Method(0xc000010000, {0x1, 0x2})
//		/src/pkg/t.go:12 +0x1d
//	created by example.com/pkg.Start in goroutine 1
//		/src/pkg/start.go:30 +0x7a
//
// The "created by" trailer belongs to another goroutine and ends the frames.
func parseStack(trace []byte) []Identity {
	lines := strings.Split(string(trace), "\n")
	frames := make([]Identity, 0, len(lines)/2)

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")

		switch {
		case line == "",
			strings.HasPrefix(line, "\t"),
			strings.HasPrefix(line, "..."),
			strings.HasPrefix(line, "goroutine ") && strings.HasSuffix(line, ":"):
			continue
		case strings.HasPrefix(line, "created by "):
			return frames
		}

		var file string
		var lineNo int
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "\t") {
			file, lineNo = parseLocation(lines[i+1])
			i++
		}

		frames = append(frames, newIdentity(trimArgs(line), file, lineNo, StrategyStack))
	}

	return frames
}

// trimArgs drops the argument list from a function line.
func trimArgs(line string) string {
	line, _, _ = strings.Cut(line, " [recovered]")
	if !strings.HasSuffix(line, ")") {
		return line
	}

	if open := strings.LastIndexByte(line, '('); open > 0 {
		return line[:open]
	}

	return line
}

// parseLocation reads "\t/path/file.go:12 +0x1d".
func parseLocation(line string) (string, int) {
	loc, _ := utils.Unpack2(strings.SplitN(strings.TrimSpace(line), " +0x", 2))

	file, num, found := utils.CutLast(loc, ":")
	if !found {
		return loc, 0
	}

	n, err := strconv.Atoi(num)
	if err != nil {
		return loc, 0
	}

	return file, n
}
