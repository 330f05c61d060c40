package common

import (
	"path"
	"runtime/debug"
	"strings"
	"sync"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

var buildModules = sync.OnceValue(func() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	return ModulePaths(info)
})

// ModulePaths lists the main module and every dependency module of info,
// replacements included.
func ModulePaths(info *debug.BuildInfo) []string {
	if info == nil {
		return nil
	}

	paths := []string{info.Main.Path}
	for _, dep := range info.Deps {
		paths = append(paths, dep.Path)
		if dep.Replace != nil {
			paths = append(paths, dep.Replace.Path)
		}
	}

	return paths
}

// IsStdPkg reports whether pkgPath names a standard library package of the
// running binary. Packages of the main module and its dependencies never do,
// even when their module path has no dot (as with "go mod init myapp").
func IsStdPkg(pkgPath string) bool {
	return IsStdPkgOf(pkgPath, buildModules())
}

// IsStdPkgOf is IsStdPkg against an explicit list of module paths.
// Outside the listed modules, standard library import paths are the ones
// without a dot in their first element.
func IsStdPkgOf(pkgPath string, modules []string) bool {
	switch pkgPath {
	case "", "main", "command-line-arguments":
		return false
	}

	for _, mod := range modules {
		if mod != "" && (pkgPath == mod || strings.HasPrefix(pkgPath, mod+"/")) {
			return false
		}
	}

	first, _, _ := strings.Cut(pkgPath, "/")

	return !strings.Contains(first, ".")
}
