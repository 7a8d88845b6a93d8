package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jazal/internal/argspec"
	"jazal/internal/digest"
	"jazal/internal/pathcheck"
)

const digestAfterStem = "_digest"

var (
	digestAlgo     string
	digestPassword string
	digestSalt     string
)

var digestCmd = &cobra.Command{
	Use:   "digest <file> [output]",
	Short: "Write the digest of a file",
	Long: `Hashes a file and writes "<digest>  <file name>" to the output. The output
extension follows the algorithm (.b3, .xxh3 or .b2) and is corrected if
wrong. A missing output defaults to <stem>_digest<extension> beside the input.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := digest.ParseAlgorithm(digestAlgo)
		if err != nil {
			return err
		}

		// Any extension is accepted: only existence and kind are checked.
		inWarner := pathcheck.NewMissingArgWarner("Argument 1", pathcheck.Extension{})
		if len(args) == 0 {
			return inWarner.MissingArgError()
		}
		input := inWarner.MakeChecker(args[0])
		if err := input.CheckPathExists(); err != nil {
			return err
		}
		if err := argspec.CheckKind(input, argspec.KindFile); err != nil {
			return err
		}

		key, salt, err := digestKey(alg)
		if err != nil {
			return err
		}

		output := outputFile(args, 1, input.PathChecker,
			pathcheck.NewMissingArgWarner("Argument 2", alg.Extension()), digestAfterStem)

		bar := newBar(fileSize(input.Path()), "hashing", true)
		sum, err := digest.File(input.Path(), alg, key, func(n int) {
			bar.Add(n)
		})
		if err != nil {
			return err
		}
		bar.Finish()

		var b strings.Builder
		fmt.Fprintf(&b, "%s  %s\n", sum, input.FileName())
		if salt != nil {
			fmt.Fprintf(&b, "salt %s\n", hex.EncodeToString(salt))
		}
		if err := writeText(output, b.String()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote '%s'\n", output)
		return nil
	},
}

// digestKey returns nil values when no password is set. Without --salt a new
// salt is generated; it is returned so that it can be written out.
func digestKey(alg digest.Algorithm) (key, salt []byte, err error) {
	if digestPassword == "" {
		return nil, nil, nil
	}
	if digestSalt == "" {
		salt, err = digest.GenerateSalt()
		if err != nil {
			return nil, nil, err
		}
	} else {
		salt, err = hex.DecodeString(digestSalt)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid salt: %w", err)
		}
	}
	master := digest.DeriveKey([]byte(digestPassword), salt)
	key, err = digest.DeriveSubKey(master, alg)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

func init() {
	rootCmd.AddCommand(digestCmd)
	digestCmd.Flags().StringVarP(&digestAlgo, "algo", "a", string(digest.Blake3), "Digest algorithm (blake3, xxh3, blake2b)")
	digestCmd.Flags().StringVarP(&digestPassword, "password", "p", "", "Password for a keyed digest")
	digestCmd.Flags().StringVar(&digestSalt, "salt", "", "Hex salt for the password; generated if empty")
}
