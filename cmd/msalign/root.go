package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dialogalign/msalign/internal/config"
	"github.com/dialogalign/msalign/pkg/msalign"
)

var rootCmd = &cobra.Command{
	Use:   "msalign",
	Short: "Multi-speaker dialogue alignment",
	Long:  "msalign aligns automatic-speech-recognition hypothesis tokens against a speaker-labeled reference transcript.",
}

func init() {
	rootCmd.PersistentFlags().Int("partial-bound", 2, "edit-distance threshold below which a mismatch counts as a partial match")
	rootCmd.PersistentFlags().Int("tensor-cell-cap", 0, "maximum score-tensor cell count (0 = default)")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the msalign version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(msalign.Version())
	},
}

func loadOptions(cmd *cobra.Command) msalign.Options {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		fmt.Fprintln(os.Stderr, "msalign:", err)
		os.Exit(1)
	}
	opts := msalign.DefaultOptions()
	opts.PartialBound = cfg.PartialBound
	if cfg.TensorCellCap > 0 {
		opts.TensorCellCap = cfg.TensorCellCap
	}
	return opts
}
