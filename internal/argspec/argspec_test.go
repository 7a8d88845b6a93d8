package argspec

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jazal/internal/pathcheck"
)

const demoSpec = `
arguments:
  - name: Argument 1
    extension: [".pdf"]
    kind: file
  - name: Argument 2
    extension: [".txt"]
    required: false
`

func TestParse(t *testing.T) {
	t.Parallel()

	spec, err := Parse([]byte(demoSpec))
	require.NoError(t, err)
	require.Len(t, spec.Arguments, 2)

	assert.Equal(t, "Argument 1", spec.Arguments[0].Name)
	assert.Equal(t, ".pdf", spec.Arguments[0].Extension.String())
	assert.Equal(t, KindFile, spec.Arguments[0].Kind)
	assert.True(t, spec.Arguments[0].Required)

	assert.Equal(t, KindAny, spec.Arguments[1].Kind)
	assert.False(t, spec.Arguments[1].Required)

	warners := spec.Warners()
	require.Len(t, warners, 2)
	assert.Equal(t, "Argument 2: the path to a file with extension '.txt' must be provided.",
		warners[1].MakeMissingArgMsg())
}

func TestParseNullExtension(t *testing.T) {
	t.Parallel()

	spec, err := Parse([]byte("arguments:\n  - name: dir\n    extension: null\n    kind: dir\n"))
	require.NoError(t, err)
	assert.True(t, spec.Arguments[0].Extension.IsEmpty())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     string
		inputType bool
	}{
		"scalar extension": {
			input:     "arguments:\n  - name: a\n    extension: 3\n",
			inputType: true,
		},
		"string extension": {
			input:     "arguments:\n  - name: a\n    extension: .pdf\n",
			inputType: true,
		},
		"mapping in list": {
			input:     "arguments:\n  - name: a\n    extension: [{x: 1}]\n",
			inputType: true,
		},
		"missing name": {
			input: "arguments:\n  - extension: [.pdf]\n",
		},
		"unknown kind": {
			input: "arguments:\n  - name: a\n    kind: socket\n",
		},
		"bad yaml": {
			input: "arguments: [",
		},
	}
	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.input))
			require.ErrorIs(t, err, ErrInvalidSpec)
			assert.Equal(t, tc.inputType, errors.Is(err, pathcheck.ErrInvalidInputType))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "args.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoSpec), 0o644))

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, spec.Arguments, 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pdf := filepath.Join(dir, "report.pdf")
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(txt, []byte("notes"), 0o644))

	spec, err := Parse([]byte(demoSpec))
	require.NoError(t, err)

	require.NoError(t, spec.Validate([]string{pdf}))
	require.NoError(t, spec.Validate([]string{pdf, txt}))

	err = spec.Validate(nil)
	require.ErrorIs(t, err, pathcheck.ErrMissingArgument)
	assert.EqualError(t, err, "Argument 1: the path to a file with extension '.pdf' must be provided.")

	err = spec.Validate([]string{txt, pdf})
	require.ErrorIs(t, err, pathcheck.ErrExtensionMismatch)
	assert.EqualError(t, err, "Argument 1 must be the path to a file with the extension '.pdf'.\n"+
		"Argument 2 must be the path to a file with the extension '.txt'.")

	missing := filepath.Join(dir, "missing.pdf")
	err = spec.Validate([]string{missing})
	require.ErrorIs(t, err, pathcheck.ErrPathNotFound)
	assert.EqualError(t, err, "Argument 1: "+missing+" does not exist.")

	err = spec.Validate([]string{pdf, txt, txt})
	require.ErrorIs(t, err, ErrTooManyArguments)
}

func TestCheckArgumentKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := CheckArgument(pathcheck.NewArgPathChecker(file, pathcheck.Extension{}, "Argument 1"), KindDir)
	require.ErrorIs(t, err, ErrWrongKind)
	assert.EqualError(t, err, "Argument 1 must be a directory.")

	err = CheckArgument(pathcheck.NewArgPathChecker(dir, pathcheck.Extension{}, "Argument 1"), KindFile)
	require.ErrorIs(t, err, ErrWrongKind)
	assert.EqualError(t, err, "Argument 1 must be a file.")

	require.NoError(t, CheckArgument(pathcheck.NewArgPathChecker(dir, pathcheck.Extension{}, "d"), KindDir))
	require.NoError(t, CheckArgument(pathcheck.NewArgPathChecker(file, pathcheck.Extension{}, "f"), KindAny))
}
