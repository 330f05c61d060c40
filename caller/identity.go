package caller

import (
	"fmt"
	"strings"

	"github.com/reflectkit/introspector/internal/common"
)

// Identity describes a resolved stack frame.
type Identity struct {
	// Function is the fully-qualified symbol, e.g. "example.com/pkg.(*T).Method".
	Function string
	// Package is the import path of the function's package.
	Package string
	// Receiver is the method receiver type without "*", empty for plain functions.
	Receiver string
	// Name is the function or method name, including closure suffixes.
	Name string
	File string
	Line int
	// Strategy names the strategy that resolved the frame.
	Strategy string
}

func newIdentity(symbol, file string, line int, strategy string) Identity {
	pkg, receiver, name := parseSymbol(symbol)

	return Identity{
		Function: symbol,
		Package:  pkg,
		Receiver: receiver,
		Name:     name,
		File:     file,
		Line:     line,
		Strategy: strategy,
	}
}

// TypeName returns "pkg/path.Receiver" for methods and the full symbol otherwise.
func (id Identity) TypeName() string {
	if id.Receiver == "" {
		return id.Function
	}

	return id.Package + "." + id.Receiver
}

// PackageName returns the last element of the package path.
func (id Identity) PackageName() string {
	return common.PkgAlias(id.Package)
}

func (id Identity) String() string {
	if id.File == "" {
		return id.Function
	}

	return fmt.Sprintf("%s (%s:%d)", id.Function, id.File, id.Line)
}

// parseSymbol splits a runtime function symbol into its package path,
// receiver type and function name. Recognized shapes:
//
//	example.com/a/b.Func
//	example.com/a/b.(*T).Method
//	example.com/a/b.T.Method
//	example.com/a/b.Func.func1
//	example.com/a/b.Func[...]
func parseSymbol(symbol string) (pkg, receiver, name string) {
	// type arguments may contain slashes and dots of their own
	head, _, _ := strings.Cut(symbol, "[")

	slash := strings.LastIndexByte(head, '/')
	dot := strings.IndexByte(head[slash+1:], '.')
	if dot < 0 {
		return "", "", symbol
	}

	// the linker escapes dots in the last import path element
	pkg = strings.ReplaceAll(symbol[:slash+1+dot], "%2e", ".")
	rest := symbol[slash+1+dot+1:]

	if strings.HasPrefix(rest, "(*") {
		end := strings.IndexByte(rest, ')')
		if end < 0 || end+2 > len(rest) {
			return pkg, "", rest
		}

		return pkg, trimTypeArgs(rest[2:end]), rest[end+2:]
	}

	first, second := cutTopLevel(rest)
	if second == "" || isClosureSuffix(second) {
		return pkg, "", rest
	}

	return pkg, trimTypeArgs(first), second
}

// isClosureSuffix reports whether s is a compiler generated name for a
// function literal or go/defer wrapper, e.g. "func1" or "gowrap2".
func isClosureSuffix(s string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		rest, ok := strings.CutPrefix(s, prefix)
		if ok && rest != "" && rest[0] >= '0' && rest[0] <= '9' {
			return true
		}
	}

	return false
}

// cutTopLevel splits s at the first dot that is not inside type arguments.
func cutTopLevel(s string) (before, after string) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				return s[:i], s[i+1:]
			}
		}
	}

	return s, ""
}

func trimTypeArgs(s string) string {
	before, _, _ := strings.Cut(s, "[")
	return before
}
