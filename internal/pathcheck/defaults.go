package pathcheck

import (
	"path/filepath"
)

// ExtensionSource is anything that holds an expected extension.
type ExtensionSource interface {
	Extension() Extension
}

// MakeDefaultFileName alters the stem of stemSource and appends the
// extension of extSource. The result can replace a missing or invalid path.
func MakeDefaultFileName(stemSource PathChecker, extSource ExtensionSource, before, after string) string {
	return stemSource.MakeAlteredNameWith(before, after, extSource.Extension())
}

// MakeDefaultPath puts MakeDefaultFileName in the directory of stemSource.
func MakeDefaultPath(stemSource PathChecker, extSource ExtensionSource, before, after string) string {
	name := MakeDefaultFileName(stemSource, extSource, before, after)
	return filepath.Join(filepath.Dir(stemSource.Path()), name)
}
