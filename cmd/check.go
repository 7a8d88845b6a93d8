package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jazal/internal/argspec"
	"jazal/internal/pathcheck"
)

var (
	checkSpec string
	checkName string
	checkExt  string
	checkKind string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Validate path arguments",
	Long: `Validates paths against a YAML argument spec (--spec), or against one
extension and kind given by flags. Each failure is printed on its own line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := checkArguments(len(args))
		if err != nil {
			return err
		}
		logger.Debug("checking", "arguments", len(spec.Arguments), "paths", len(args))

		if err := spec.Validate(args); err != nil {
			return err
		}
		for _, a := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", a)
		}
		return nil
	},
}

// checkArguments loads --spec, or builds a spec in which each of the n paths
// (at least one) expects --ext and --kind.
func checkArguments(n int) (*argspec.Spec, error) {
	if checkSpec != "" {
		return argspec.Load(checkSpec)
	}

	kind := argspec.Kind(checkKind)
	switch kind {
	case argspec.KindAny, argspec.KindFile, argspec.KindDir:
	default:
		return nil, fmt.Errorf("unknown kind %q", checkKind)
	}

	ext := pathcheck.ParseExtension(checkExt)
	spec := &argspec.Spec{}
	for i := 0; i < max(n, 1); i++ {
		name := checkName
		if name == "" || n > 1 {
			name = fmt.Sprintf("Argument %d", i+1)
		}
		spec.Arguments = append(spec.Arguments, argspec.Argument{
			Name:      name,
			Extension: ext,
			Kind:      kind,
			Required:  true,
		})
	}
	return spec, nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkSpec, "spec", "s", "", "YAML argument spec")
	checkCmd.Flags().StringVarP(&checkName, "name", "n", "", "Argument name used in messages")
	checkCmd.Flags().StringVarP(&checkExt, "ext", "e", "", "Expected extension, e.g. .tar.gz")
	checkCmd.Flags().StringVarP(&checkKind, "kind", "k", string(argspec.KindAny), "Expected kind (file, dir, any)")
}
