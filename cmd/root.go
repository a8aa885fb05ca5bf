package cmd

import (
	"path/filepath"

	"wikigen/pkg/sidebar"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

// RootCmd is the base command. Running it without a subcommand performs one
// sidebar generation pass on the current directory.
//
// Flag parsing stays disabled so the raw argument list reaches the sidebar
// option parser unchanged: an unsupported option is reported but does not
// stop generation.
var RootCmd = &cobra.Command{
	Use:   "wikigen [--keep-file-name]",
	Short: "wikigen regenerates the _sidebar.md navigation file of a wiki",
	Long: `wikigen walks a documentation tree and regenerates its _sidebar.md
navigation file: one collapsible section per directory, one link per
document, wrapped in a do-not-edit banner.`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		arguments := sidebar.Arguments{
			Root:    "./",
			Options: args,
		}
		if err := sidebar.Execute(arguments, logger); err != nil {
			return err
		}

		output, err := filepath.Abs(filepath.Join(arguments.Root, sidebar.OutputFileName))
		if err != nil {
			output = sidebar.OutputFileName
		}
		color.Green("Generated %s", output)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it with the
// provided logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
