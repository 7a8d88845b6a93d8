package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jazal/internal/argspec"
	"jazal/internal/pathcheck"
)

const countAfterStem = "_file_count"

var countCmd = &cobra.Command{
	Use:   "count <dir> [output dir]",
	Short: "Count the files in a directory",
	Long: `Counts the entries of a directory, hidden ones excepted, and writes the
result to <dir name>_file_count.txt in the output directory. The output
directory defaults to <dir>_file_count beside the input and is created if
needed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := requireArg(args, 0,
			pathcheck.NewMissingArgWarner("Argument 1", pathcheck.Extension{}), argspec.KindDir)
		if err != nil {
			return err
		}

		outWarner := pathcheck.NewMissingArgWarner("Argument 2", pathcheck.Extension{})
		var outDir string
		if len(args) > 1 {
			outDir = ensureExtension(outWarner.MakeChecker(args[1]))
		} else {
			outDir = input.MakeAlteredPath("", countAfterStem)
		}

		count, err := countFiles(input.Path())
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", outDir, err)
		}
		output := filepath.Join(outDir, input.FileName()+countAfterStem+txtExtension.String())
		if err := writeText(output, fileCountMsg(input.Path(), count)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote '%s'\n", output)
		return nil
	},
}

func countFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", dir, err)
	}

	bar := newBar(-1, "counting", false)
	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		count++
		bar.Add(1)
	}
	bar.Finish()
	logger.Debug("counted", "dir", dir, "files", count)
	return count, nil
}

func fileCountMsg(dir string, count int) string {
	noun := " file."
	if count >= 2 {
		noun = " files."
	}
	return fmt.Sprintf("Directory %s contains %d%s", dir, count, noun)
}

func init() {
	rootCmd.AddCommand(countCmd)
}
