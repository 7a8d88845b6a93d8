package pathcheck

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ArgPathChecker is a PathChecker whose path is the value of a named
// function or script argument. Its errors mention that name.
type ArgPathChecker struct {
	PathChecker
	argName string
}

func NewArgPathChecker(path string, ext Extension, argName string) ArgPathChecker {
	return ArgPathChecker{PathChecker: NewPathChecker(path, ext), argName: argName}
}

func (c ArgPathChecker) ArgName() string {
	return c.argName
}

func (c ArgPathChecker) Equal(other ArgPathChecker) bool {
	return c.PathChecker.Equal(other.PathChecker) && c.argName == other.argName
}

func (c ArgPathChecker) String() string {
	return fmt.Sprintf("ArgPathChecker(%q, %q, %q)", c.path, c.ext.Suffixes(), c.argName)
}

// CheckPathExists returns an *ArgError wrapping ErrPathNotFound if the path
// does not exist.
func (c ArgPathChecker) CheckPathExists() error {
	if c.PathExists() {
		return nil
	}
	return &ArgError{
		ArgName: c.argName,
		Path:    c.path,
		Kind:    ErrPathNotFound,
		msg:     c.argName + ": " + c.path + " does not exist.",
	}
}

// CheckExtensionCorrect returns an *ArgError wrapping ErrExtensionMismatch
// if the path's suffixes differ from the expected extension.
func (c ArgPathChecker) CheckExtensionCorrect() error {
	if c.ExtensionIsCorrect() {
		return nil
	}
	return &ArgError{
		ArgName: c.argName,
		Path:    c.path,
		Kind:    ErrExtensionMismatch,
		msg:     c.argName + " must be the path to a file with the extension '" + c.ext.String() + "'.",
	}
}

// Check runs CheckPathExists and CheckExtensionCorrect and returns every
// failure, one message per line.
func (c ArgPathChecker) Check() error {
	var merr *multierror.Error
	if err := c.CheckPathExists(); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := c.CheckExtensionCorrect(); err != nil {
		merr = multierror.Append(merr, err)
	}
	if merr != nil {
		merr.ErrorFormat = LineFormat
	}
	return merr.ErrorOrNil()
}

func (c ArgPathChecker) MakeMissingArgMsg() string {
	return missingArgMsg(c.argName, c.ext)
}

// NameWithCorrectExtension strips every suffix from the file name and
// appends the expected extension.
func (c ArgPathChecker) NameWithCorrectExtension() string {
	return bareStem(c.FileName()) + c.ext.String()
}

// PathWithCorrectExtension returns the path with its extension replaced by
// the expected one. It returns false if the path does not denote a file,
// meaning it has no final component or it is an existing directory.
func (c ArgPathChecker) PathWithCorrectExtension() (string, bool) {
	if c.FileName() == "" || c.PathIsDir() {
		return "", false
	}
	if c.ExtensionIsCorrect() {
		return c.path, true
	}
	return filepath.Join(filepath.Dir(c.path), c.NameWithCorrectExtension()), true
}

// LineFormat is a multierror.ErrorFormatFunc that prints one error per line.
func LineFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func missingArgMsg(argName string, ext Extension) string {
	return argName + ": the path to a file with extension '" + ext.String() + "' must be provided."
}
