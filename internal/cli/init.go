package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treefixture/pkg/config"
	"github.com/matzehuels/treefixture/pkg/errors"
)

// defaultConfigPath is where init writes unless told otherwise.
const defaultConfigPath = "fixture.toml"

// initCommand creates the init command, which writes the default config.
func (c *CLI) initCommand() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the stock fixture configuration as TOML, ready to edit.

Examples:
  treefixture init
  treefixture init -o - > my.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := config.Default().Write(&buf); err != nil {
				return err
			}

			if output == stdoutPath {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if _, err := os.Stat(output); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", output)
			}
			if err := writeOutput(cmd.OutOrStdout(), output, buf.Bytes()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Wrote %s", output)
			printNextStep(out, "Generate the fixture", appName+" generate -c "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultConfigPath, `config file, "-" for stdout`)
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
