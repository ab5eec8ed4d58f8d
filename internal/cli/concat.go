package cli

import (
	"github.com/spf13/cobra"

	"github.com/clipforge/clipforge/internal/config"
)

var concatOutput string

var concatCmd = &cobra.Command{
	Use:   "concat <input>...",
	Short: "Concatenate multiple videos into one file",
	Long: `Concatenate two or more clips into a single file. Every input is
normalized to the resolution and pixel format of the first clip that probes
successfully, then the clips are joined in the order given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.OutputPath = concatOutput
		return run(cmd.Context(), config.OpConcat, args)
	},
}

func init() {
	concatCmd.Flags().StringVarP(&concatOutput, "output", "o", "", "Output file path")
	_ = concatCmd.MarkFlagRequired("output")
}
