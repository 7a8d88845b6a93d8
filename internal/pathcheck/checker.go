// Package pathcheck validates paths given as function or command-line
// arguments and builds corrected or default paths from them.
//
// A file's stem, in this package, is its name without the extension, which
// may hold several suffixes: the stem of "archive.tar.gz" is "archive".
package pathcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// PathChecker pairs a path with the extension it is supposed to have.
type PathChecker struct {
	path string
	ext  Extension
}

// NewPathChecker cleans path with filepath.Clean.
func NewPathChecker(path string, ext Extension) PathChecker {
	return PathChecker{path: filepath.Clean(path), ext: ext}
}

// PathCheckerFrom is NewPathChecker for loosely typed values. The path must
// be a string; ext is handled by ExtensionFrom.
func PathCheckerFrom(path, ext any) (PathChecker, error) {
	p, ok := path.(string)
	if !ok {
		return PathChecker{}, fmt.Errorf("%w: the path must be a string, got %T", ErrInvalidInputType, path)
	}
	e, err := ExtensionFrom(ext)
	if err != nil {
		return PathChecker{}, err
	}
	return NewPathChecker(p, e), nil
}

func (c PathChecker) Path() string {
	return c.path
}

func (c PathChecker) Extension() Extension {
	return c.ext
}

// WithExtension returns a copy of c that expects ext.
func (c PathChecker) WithExtension(ext Extension) PathChecker {
	return PathChecker{path: c.path, ext: ext}
}

func (c PathChecker) Equal(other PathChecker) bool {
	return c.path == other.path && c.ext.Equal(other.ext)
}

func (c PathChecker) String() string {
	return fmt.Sprintf("PathChecker(%q, %q)", c.path, c.ext.Suffixes())
}

func (c PathChecker) PathExists() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

func (c PathChecker) PathIsDir() bool {
	info, err := os.Stat(c.path)
	return err == nil && info.IsDir()
}

func (c PathChecker) PathIsFile() bool {
	info, err := os.Stat(c.path)
	return err == nil && info.Mode().IsRegular()
}

// Suffixes returns the suffixes that the path actually has.
func (c PathChecker) Suffixes() []string {
	return nameSuffixes(c.FileName())
}

// ExtensionIsCorrect reports whether the path's suffixes are exactly the
// expected ones, in the same order.
func (c PathChecker) ExtensionIsCorrect() bool {
	return slices.Equal(c.Suffixes(), c.ext.suffixes)
}

// FileName returns the final component of the path, or "" when there is
// none ("", "/", "." and "..").
func (c PathChecker) FileName() string {
	name := filepath.Base(c.path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return name
}

// FileStem removes the expected extension from the file name when the name
// ends with it. Otherwise every suffix is removed.
func (c PathChecker) FileStem() string {
	name := c.FileName()
	actual := nameSuffixes(name)
	n := c.ext.Len()
	if n > 0 && n <= len(actual) && slices.Equal(actual[len(actual)-n:], c.ext.suffixes) {
		return strings.TrimSuffix(name, c.ext.String())
	}
	return bareStem(name)
}

func (c PathChecker) MakeAlteredStem(before, after string) string {
	return before + c.FileStem() + after
}

func (c PathChecker) MakeAlteredName(before, after string) string {
	return c.MakeAlteredNameWith(before, after, c.ext)
}

func (c PathChecker) MakeAlteredNameWith(before, after string, ext Extension) string {
	return c.MakeAlteredStem(before, after) + ext.String()
}

// MakeAlteredPath places MakeAlteredName in the path's directory.
func (c PathChecker) MakeAlteredPath(before, after string) string {
	return filepath.Join(filepath.Dir(c.path), c.MakeAlteredName(before, after))
}

// suffixBoundary returns the index at which the first suffix of name starts,
// or len(name). Leading dots belong to the name and a name ending with a dot
// has no suffixes.
func suffixBoundary(name string) int {
	if name == "" || strings.HasSuffix(name, Delimiter) {
		return len(name)
	}
	lead := len(name) - len(strings.TrimLeft(name, Delimiter))
	i := strings.Index(name[lead:], Delimiter)
	if i < 0 {
		return len(name)
	}
	return lead + i
}

func nameSuffixes(name string) []string {
	b := suffixBoundary(name)
	if b == len(name) {
		return nil
	}
	parts := strings.Split(name[b+len(Delimiter):], Delimiter)
	suffixes := make([]string, len(parts))
	for i, p := range parts {
		suffixes[i] = Delimiter + p
	}
	return suffixes
}

func bareStem(name string) string {
	return name[:suffixBoundary(name)]
}
