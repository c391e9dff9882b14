package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dialogalign/msalign/internal/csvio"
	"github.com/dialogalign/msalign/pkg/msalign"
)

var (
	csvInPath       string
	csvOutPath      string
	csvHypoLine     int
	csvRefLine      int
	csvLabelLine    int
	csvSpeakerLine  int
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Run the full alignment pipeline against a CSV file, writing every result back out as CSV",
	RunE:  runCSV,
}

func init() {
	csvCmd.Flags().StringVar(&csvInPath, "in", "", "input CSV file (required)")
	csvCmd.Flags().StringVar(&csvOutPath, "out", "", "output CSV file (required)")
	csvCmd.Flags().IntVar(&csvHypoLine, "hypo-line", 0, "CSV row holding the hypothesis tokens")
	csvCmd.Flags().IntVar(&csvRefLine, "ref-line", 1, "CSV row holding the reference tokens")
	csvCmd.Flags().IntVar(&csvLabelLine, "label-line", 2, "CSV row holding the reference speaker labels")
	csvCmd.Flags().IntVar(&csvSpeakerLine, "hypo-speaker-line", 3, "CSV row holding the original hypothesis speaker labels")
	csvCmd.MarkFlagRequired("in")
	csvCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(csvCmd)
}

func runCSV(cmd *cobra.Command, args []string) error {
	opts := loadOptions(cmd)

	in, err := os.Open(csvInPath)
	if err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	defer in.Close()

	doc, err := csvio.Read(in)
	if err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	hypothesis, err := doc.Hypothesis(csvHypoLine)
	if err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	reference, labels, err := doc.ReferenceWithLabel(csvRefLine, csvLabelLine)
	if err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	hypoSpeakerLabel, err := doc.Hypothesis(csvSpeakerLine)
	if err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}

	grid, speakers, _, err := msalign.AlignWithAutoSegment(hypothesis, reference, labels, opts)
	if err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}

	categories := msalign.TokenMatchResult(grid, opts.PartialBound)
	indices := msalign.AlignIndices(grid)
	refOriginal := msalign.RefOriginalIndices(labels, speakers)
	hypoLabels := msalign.AlignedHypoSpeakerLabel(grid, []string(hypoSpeakerLabel))

	out, err := os.Create(csvOutPath)
	if err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	defer out.Close()

	if err := csvio.WriteGrid(out, grid); err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	if err := csvio.WriteCategories(out, categories); err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	if err := csvio.WriteIndices(out, indices); err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	if err := csvio.WriteIndices(out, refOriginal); err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	if err := csvio.WriteLabels(out, speakers); err != nil {
		return fmt.Errorf("msalign csv: %w", err)
	}
	return csvio.WriteLabels(out, hypoLabels)
}
