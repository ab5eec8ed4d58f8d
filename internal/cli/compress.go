package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clipforge/clipforge/internal/config"
)

var compressCmd = &cobra.Command{
	Use:   "compress <input>",
	Short: "Reduce a video's file size by a 1-10 reduction level",
	Long: `Reduce a video's file size. The reduction level runs from 1 (minimum
reduction, best quality) to 10 (maximum reduction, lowest quality) and maps
to CRF, resolution, frame-rate, and audio-bitrate tiers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.OutputPath == "" {
			cfg.OutputPath = defaultOutputPath(args[0])
		}
		return run(cmd.Context(), config.OpCompress, args)
	},
}

func init() {
	compressCmd.Flags().IntVarP(&cfg.ReductionLevel, "reduction-level", "r", 0,
		"Reduction level from 1 (min reduction) to 10 (max reduction)")
	compressCmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", "",
		"Output file path (default: <input>_compressed.<ext>)")
	_ = compressCmd.MarkFlagRequired("reduction-level")
}

// defaultOutputPath derives "<name>_compressed<ext>" next to the input.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_compressed" + ext
}
