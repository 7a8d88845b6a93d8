// Package argspec loads YAML descriptions of the path arguments a script
// expects and validates argument vectors against them.
//
//	arguments:
//	  - name: Argument 1
//	    extension: [".pdf"]
//	    kind: file
//	  - name: Argument 2
//	    extension: [".txt"]
//	    required: false
package argspec

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"jazal/internal/pathcheck"
)

type Kind string

const (
	KindAny  Kind = "any"
	KindFile Kind = "file"
	KindDir  Kind = "dir"
)

var (
	ErrInvalidSpec      = errors.New("invalid argument spec")
	ErrWrongKind        = errors.New("wrong path kind")
	ErrTooManyArguments = errors.New("too many arguments")
)

type Argument struct {
	Name      string
	Extension pathcheck.Extension
	Kind      Kind
	Required  bool
}

func (a Argument) Warner() pathcheck.MissingArgWarner {
	return pathcheck.NewMissingArgWarner(a.Name, a.Extension)
}

type Spec struct {
	Arguments []Argument
}

type rawSpec struct {
	Arguments []rawArgument `yaml:"arguments"`
}

type rawArgument struct {
	Name      string `yaml:"name"`
	Extension any    `yaml:"extension"`
	Kind      string `yaml:"kind"`
	Required  *bool  `yaml:"required"`
}

func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

func Parse(data []byte) (*Spec, error) {
	var raw rawSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	spec := &Spec{Arguments: make([]Argument, 0, len(raw.Arguments))}
	for i, r := range raw.Arguments {
		arg, err := r.argument()
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrInvalidSpec, i+1, err)
		}
		spec.Arguments = append(spec.Arguments, arg)
	}
	return spec, nil
}

func (r rawArgument) argument() (Argument, error) {
	if r.Name == "" {
		return Argument{}, errors.New("name is required")
	}
	ext, err := pathcheck.ExtensionFrom(r.Extension)
	if err != nil {
		return Argument{}, err
	}
	kind := Kind(r.Kind)
	switch kind {
	case "":
		kind = KindAny
	case KindAny, KindFile, KindDir:
	default:
		return Argument{}, fmt.Errorf("unknown kind %q", r.Kind)
	}
	required := true
	if r.Required != nil {
		required = *r.Required
	}
	return Argument{Name: r.Name, Extension: ext, Kind: kind, Required: required}, nil
}

// Warners returns one warner per argument, in order.
func (s *Spec) Warners() []pathcheck.MissingArgWarner {
	warners := make([]pathcheck.MissingArgWarner, len(s.Arguments))
	for i, a := range s.Arguments {
		warners[i] = a.Warner()
	}
	return warners
}

// Validate checks args[i] against Arguments[i] and returns every failure,
// one message per line.
func (s *Spec) Validate(args []string) error {
	var merr *multierror.Error

	if len(args) > len(s.Arguments) {
		merr = multierror.Append(merr, fmt.Errorf("%w: expected at most %d, got %d",
			ErrTooManyArguments, len(s.Arguments), len(args)))
	}

	for i, a := range s.Arguments {
		w := a.Warner()
		if i >= len(args) {
			if a.Required {
				merr = multierror.Append(merr, w.MissingArgError())
			}
			continue
		}
		if err := CheckArgument(w.MakeChecker(args[i]), a.Kind); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if merr != nil {
		merr.ErrorFormat = pathcheck.LineFormat
	}
	return merr.ErrorOrNil()
}

// CheckArgument checks that c exists, has the right kind and the expected
// extension, stopping at the first failure.
func CheckArgument(c pathcheck.ArgPathChecker, kind Kind) error {
	if err := c.CheckPathExists(); err != nil {
		return err
	}
	if err := CheckKind(c, kind); err != nil {
		return err
	}
	return c.CheckExtensionCorrect()
}

// CheckKind reports an error wrapping ErrWrongKind if c is not a file or a
// directory as kind requires.
func CheckKind(c pathcheck.ArgPathChecker, kind Kind) error {
	switch {
	case kind == KindFile && !c.PathIsFile():
		return &kindError{argName: c.ArgName(), kind: "a file"}
	case kind == KindDir && !c.PathIsDir():
		return &kindError{argName: c.ArgName(), kind: "a directory"}
	}
	return nil
}

type kindError struct {
	argName string
	kind    string
}

func (e *kindError) Error() string {
	return e.argName + " must be " + e.kind + "."
}

func (e *kindError) Unwrap() error {
	return ErrWrongKind
}
