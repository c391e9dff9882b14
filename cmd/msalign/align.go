package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dialogalign/msalign/internal/csvio"
	"github.com/dialogalign/msalign/pkg/msalign"
)

var (
	alignCSVPath   string
	alignHypoLine  int
	alignRefLine   int
	alignLabelLine int
	alignMode      string
	alignSegLen    int
	alignBarrier   int
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align a hypothesis against a speaker-labeled reference read from a CSV file",
	RunE:  runAlign,
}

func init() {
	alignCmd.Flags().StringVar(&alignCSVPath, "csv", "", "input CSV file (required)")
	alignCmd.Flags().IntVar(&alignHypoLine, "hypo-line", 0, "CSV row holding the hypothesis tokens")
	alignCmd.Flags().IntVar(&alignRefLine, "ref-line", 1, "CSV row holding the reference tokens")
	alignCmd.Flags().IntVar(&alignLabelLine, "label-line", 2, "CSV row holding the reference speaker labels")
	alignCmd.Flags().StringVar(&alignMode, "mode", "auto", "segmentation mode: without, auto, manual")
	alignCmd.Flags().IntVar(&alignSegLen, "segment-length", 0, "segment length (manual mode only)")
	alignCmd.Flags().IntVar(&alignBarrier, "barrier-length", 0, "barrier length (manual mode only)")
	alignCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	opts := loadOptions(cmd)

	f, err := os.Open(alignCSVPath)
	if err != nil {
		return fmt.Errorf("msalign align: %w", err)
	}
	defer f.Close()

	doc, err := csvio.Read(f)
	if err != nil {
		return fmt.Errorf("msalign align: %w", err)
	}
	hypothesis, err := doc.Hypothesis(alignHypoLine)
	if err != nil {
		return fmt.Errorf("msalign align: %w", err)
	}
	reference, labels, err := doc.ReferenceWithLabel(alignRefLine, alignLabelLine)
	if err != nil {
		return fmt.Errorf("msalign align: %w", err)
	}

	var grid msalign.Grid
	switch alignMode {
	case "without":
		grid, _, err = msalign.AlignWithoutSegment(hypothesis, reference, labels, opts)
	case "manual":
		grid, _, err = msalign.AlignWithManualSegment(hypothesis, reference, labels, alignSegLen, alignBarrier, opts)
	default:
		grid, _, _, err = msalign.AlignWithAutoSegment(hypothesis, reference, labels, opts)
	}
	if err != nil {
		return fmt.Errorf("msalign align: %w", err)
	}

	return csvio.WriteGrid(os.Stdout, grid)
}
