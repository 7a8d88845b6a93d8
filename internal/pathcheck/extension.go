package pathcheck

import (
	"fmt"
	"slices"
	"strings"
)

// Delimiter starts every suffix of an extension.
const Delimiter = "."

// Extension is an ordered sequence of suffixes such as ".tar", ".gz".
// The zero value means that no extension is expected.
type Extension struct {
	suffixes []string
}

func NewExtension(suffixes ...string) Extension {
	if len(suffixes) == 0 {
		return Extension{}
	}
	return Extension{suffixes: append([]string(nil), suffixes...)}
}

// ExtensionFrom builds an Extension from a loosely typed value, as found in
// decoded configuration. It accepts nil, []string, []any holding strings, or
// an Extension.
func ExtensionFrom(v any) (Extension, error) {
	switch s := v.(type) {
	case nil:
		return Extension{}, nil
	case Extension:
		return s, nil
	case []string:
		return NewExtension(s...), nil
	case []any:
		suffixes := make([]string, 0, len(s))
		for i, item := range s {
			str, ok := item.(string)
			if !ok {
				return Extension{}, fmt.Errorf("%w: suffix %d is %T, not a string", ErrInvalidInputType, i, item)
			}
			suffixes = append(suffixes, str)
		}
		return NewExtension(suffixes...), nil
	default:
		return Extension{}, fmt.Errorf("%w: the extension must be nil or a list of suffixes, got %T", ErrInvalidInputType, v)
	}
}

// ParseExtension splits a concatenated extension like ".tar.gz" into its
// suffixes. Empty segments are dropped.
func ParseExtension(s string) Extension {
	var suffixes []string
	for _, part := range strings.Split(s, Delimiter) {
		if part != "" {
			suffixes = append(suffixes, Delimiter+part)
		}
	}
	return NewExtension(suffixes...)
}

// Suffixes returns a copy of the suffixes.
func (e Extension) Suffixes() []string {
	return append([]string(nil), e.suffixes...)
}

func (e Extension) Len() int {
	return len(e.suffixes)
}

func (e Extension) IsEmpty() bool {
	return len(e.suffixes) == 0
}

// String concatenates the suffixes in order.
func (e Extension) String() string {
	return strings.Join(e.suffixes, "")
}

func (e Extension) Equal(other Extension) bool {
	return slices.Equal(e.suffixes, other.suffixes)
}

