package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jazal/internal/argspec"
	"jazal/internal/pathcheck"
)

const nameAfterStem = "_file_name"

var (
	pdfExtension = pathcheck.NewExtension(".pdf")
	txtExtension = pathcheck.NewExtension(".txt")
)

var nameCmd = &cobra.Command{
	Use:   "name <input.pdf> [output.txt]",
	Short: "Write the name of a PDF file into a text file",
	Long: `Writes "File name is <name>." into the output file. If the output is a
directory, the file <stem>_file_name.txt is created in it. If it is missing,
that file is created beside the input.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := requireArg(args, 0,
			pathcheck.NewMissingArgWarner("Argument 1", pdfExtension), argspec.KindFile)
		if err != nil {
			return err
		}

		output := outputFile(args, 1, input.PathChecker,
			pathcheck.NewMissingArgWarner("Argument 2", txtExtension), nameAfterStem)

		if err := writeText(output, "File name is "+input.FileName()+"."); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote '%s'\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
}
