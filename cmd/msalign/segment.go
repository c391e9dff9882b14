package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dialogalign/msalign/internal/csvio"
	"github.com/dialogalign/msalign/internal/segment"
)

var (
	segmentCSVPath   string
	segmentHypoLine  int
	segmentRefLine   int
	segmentLabelLine int
	segmentLength    int
	segmentBarrier   int
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Print the cut indices a segmentation pass would use, without running the aligner",
	RunE:  runSegment,
}

func init() {
	segmentCmd.Flags().StringVar(&segmentCSVPath, "csv", "", "input CSV file (required)")
	segmentCmd.Flags().IntVar(&segmentHypoLine, "hypo-line", 0, "CSV row holding the hypothesis tokens")
	segmentCmd.Flags().IntVar(&segmentRefLine, "ref-line", 1, "CSV row holding the reference tokens")
	segmentCmd.Flags().IntVar(&segmentLabelLine, "label-line", 2, "CSV row holding the reference speaker labels")
	segmentCmd.Flags().IntVar(&segmentLength, "segment-length", 0, "segment length; 0 sweeps for the optimum")
	segmentCmd.Flags().IntVar(&segmentBarrier, "barrier-length", segment.DefaultBarrierLength, "barrier length")
	segmentCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	f, err := os.Open(segmentCSVPath)
	if err != nil {
		return fmt.Errorf("msalign segment: %w", err)
	}
	defer f.Close()

	doc, err := csvio.Read(f)
	if err != nil {
		return fmt.Errorf("msalign segment: %w", err)
	}
	hypothesis, err := doc.Hypothesis(segmentHypoLine)
	if err != nil {
		return fmt.Errorf("msalign segment: %w", err)
	}
	reference, _, err := doc.ReferenceWithLabel(segmentRefLine, segmentLabelLine)
	if err != nil {
		return fmt.Errorf("msalign segment: %w", err)
	}

	length, barrier := segmentLength, segmentBarrier
	if length == 0 {
		params := segment.OptimalParameters(hypothesis, reference, segment.DefaultMinLength, segment.DefaultMaxLength, segment.DefaultBarrierLength)
		length, barrier = params.SegmentLength, params.BarrierLength
		fmt.Fprintf(os.Stdout, "optimal segment length: %d barrier length: %d\n", length, barrier)
	}

	cuts := segment.Find(hypothesis, reference, length, barrier)
	fmt.Fprintf(os.Stdout, "hypothesis cuts: %v\n", []int(cuts.Hypothesis))
	fmt.Fprintf(os.Stdout, "reference cuts:  %v\n", []int(cuts.Reference))
	return nil
}
