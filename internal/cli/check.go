package cli

import (
	"github.com/spf13/cobra"

	"github.com/clipforge/clipforge/internal/check"
	"github.com/clipforge/clipforge/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that ffmpeg, ffprobe, and the encoders are usable",
	RunE: func(cmd *cobra.Command, args []string) error {
		applyFlags()
		log, err := logging.NewLogger(&cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		check.RunCheck(log)
		return nil
	},
}
