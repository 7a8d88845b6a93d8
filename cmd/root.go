package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// errorIntro starts every error line printed by Execute.
const errorIntro = "ERROR! "

var (
	logLevel   string
	noProgress bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "jazal"})
)

var rootCmd = &cobra.Command{
	Use:   "jazal",
	Short: "jazal checks file paths given as arguments",
	Long: `jazal validates paths passed to scripts: it checks that they exist and carry
the expected extension, and derives default or corrected paths when they don't.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetLevel(level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintln(w, errorIntro+line)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Hide progress bars")
}
