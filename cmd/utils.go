package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"jazal/internal/argspec"
	"jazal/internal/pathcheck"
)

// requireArg binds args[i] to w and checks it. An absent argument gives the
// warner's missing-argument error.
func requireArg(args []string, i int, w pathcheck.MissingArgWarner, kind argspec.Kind) (pathcheck.ArgPathChecker, error) {
	if i >= len(args) {
		return pathcheck.ArgPathChecker{}, w.MissingArgError()
	}
	c := w.MakeChecker(args[i])
	if err := argspec.CheckArgument(c, kind); err != nil {
		return pathcheck.ArgPathChecker{}, err
	}
	logger.Debug("argument accepted", "arg", w.ArgName(), "path", c.Path())
	return c, nil
}

// ensureExtension replaces the extension of c's path with the expected one.
// Paths that do not denote a file are returned as is.
func ensureExtension(c pathcheck.ArgPathChecker) string {
	p, ok := c.PathWithCorrectExtension()
	if !ok {
		return c.Path()
	}
	if p != c.Path() {
		logger.Info("extension corrected", "arg", c.ArgName(), "from", c.Path(), "to", p)
	}
	return p
}

// outputFile resolves the optional output file argument args[i]. A missing
// argument defaults to the altered input name beside the input, a directory
// receives that name, and a wrong extension is replaced.
func outputFile(args []string, i int, input pathcheck.PathChecker, w pathcheck.MissingArgWarner, afterStem string) string {
	if i >= len(args) {
		p := pathcheck.MakeDefaultPath(input, w, "", afterStem)
		logger.Info("using default output", "arg", w.ArgName(), "path", p)
		return p
	}
	out := w.MakeChecker(args[i])
	if out.PathIsDir() {
		return filepath.Join(out.Path(), pathcheck.MakeDefaultFileName(input, w, "", afterStem))
	}
	return ensureExtension(out)
}

func writeText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

func newBar(max int64, description string, bytes bool) *progressbar.ProgressBar {
	switch {
	case noProgress && bytes:
		return progressbar.DefaultBytesSilent(max, description)
	case noProgress:
		return progressbar.DefaultSilent(max, description)
	case bytes:
		return progressbar.DefaultBytes(max, description)
	default:
		return progressbar.Default(max, description)
	}
}
