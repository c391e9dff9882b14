// Package stats derives word-error-rate style summaries from a completed
// alignment grid and its per-column match categories: per-speaker counts
// and an aggregate across all speakers.
package stats

import (
	"fmt"
	"sort"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/result"
	"github.com/dialogalign/msalign/internal/token"
)

// SpeakerStats summarizes one reference row's participation in the
// alignment: how many of its columns fell into each match category, plus
// the substitution/insertion/deletion counts and word error rate derived
// from those categories.
type SpeakerStats struct {
	Speaker       string
	FullyMatch    int
	PartialMatch  int
	Mismatch      int
	Gap           int
	Substitutions int
	Insertions    int
	Deletions     int
	ReferenceTokens int
	WER           float64
}

func (s *SpeakerStats) String() string {
	return fmt.Sprintf(`SpeakerStats[%s] {
  fully match: %d, partially match: %d, mismatch: %d, gap: %d
  substitutions: %d, insertions: %d, deletions: %d
  reference tokens: %d, WER: %.3f
}`, s.Speaker, s.FullyMatch, s.PartialMatch, s.Mismatch, s.Gap,
		s.Substitutions, s.Insertions, s.Deletions, s.ReferenceTokens, s.WER)
}

// unknownSpeaker labels insertions that occur in a column where no
// reference row holds a token — there is no speaker to attribute the
// extra hypothesis token to.
const unknownSpeaker = ""

// FromGrid computes one SpeakerStats per unique speaker (in uniqueLabels
// order) plus an "unknown speaker" bucket for hypothesis-only insertions
// that land where no reference row is active. categories must be
// result.TokenMatchResult(grid, partialBound)'s output for the same grid.
func FromGrid(grid msa.Grid, uniqueLabels []string, categories []result.Category) map[string]*SpeakerStats {
	bySpeaker := make(map[string]*SpeakerStats, len(uniqueLabels)+1)
	for _, l := range uniqueLabels {
		bySpeaker[l] = &SpeakerStats{Speaker: l}
	}
	bySpeaker[unknownSpeaker] = &SpeakerStats{Speaker: "(unknown)"}

	for col, cat := range categories {
		owner, refTok, hypoTok := columnOwner(grid, uniqueLabels, col)
		st := bySpeaker[owner]

		switch cat {
		case result.FullyMatch:
			st.FullyMatch++
		case result.PartiallyMatch:
			st.PartialMatch++
		case result.Mismatch:
			st.Mismatch++
			st.Substitutions++
		case result.Gap:
			st.Gap++
			switch {
			case refTok != token.Gap && hypoTok == token.Gap:
				st.Deletions++
			case refTok == token.Gap && hypoTok != token.Gap:
				st.Insertions++
			}
		}
	}

	for _, st := range bySpeaker {
		if st.ReferenceTokens = st.FullyMatch + st.PartialMatch + st.Mismatch + st.Deletions; st.ReferenceTokens > 0 {
			st.WER = float64(st.Substitutions+st.Insertions+st.Deletions) / float64(st.ReferenceTokens)
		}
	}
	return bySpeaker
}

// columnOwner finds which reference row (if any) is non-gap in column
// col, returning its speaker label (or unknownSpeaker if every reference
// row is gap there), that row's token, and the hypothesis token.
func columnOwner(grid msa.Grid, uniqueLabels []string, col int) (speaker string, refTok, hypoTok token.Token) {
	hypoTok = grid[0][col]
	for i := 1; i < len(grid); i++ {
		if grid[i][col] != token.Gap {
			return uniqueLabels[i-1], grid[i][col], hypoTok
		}
	}
	return unknownSpeaker, token.Gap, hypoTok
}

// SetStats aggregates a collection of per-speaker stats into set-level
// totals: the speaker and column counts, the per-category column totals,
// the mean of the per-speaker WERs, and an aggregate WER over all
// reference tokens.
type SetStats struct {
	SpeakerCount int
	TotalColumns int
	TotalFully   int
	TotalPartial int
	TotalMismatch int
	TotalGap     int
	MeanWER      float64
	AggregateWER float64
}

func (s *SetStats) String() string {
	return fmt.Sprintf(`SetStats {
  speakers: %d, columns: %d
  fully match: %d, partially match: %d, mismatch: %d, gap: %d
  mean WER: %.3f, aggregate WER: %.3f
}`, s.SpeakerCount, s.TotalColumns, s.TotalFully, s.TotalPartial,
		s.TotalMismatch, s.TotalGap, s.MeanWER, s.AggregateWER)
}

// FromSpeakerStats aggregates a set of SpeakerStats, identified by
// uniqueLabels, into a SetStats. Entries not present in uniqueLabels
// (e.g. the unknown-speaker bucket) are folded into the error counts but
// excluded from the mean WER, since they have no reference-token
// denominator to average against.
func FromSpeakerStats(bySpeaker map[string]*SpeakerStats, uniqueLabels []string, totalColumns int) *SetStats {
	set := &SetStats{SpeakerCount: len(uniqueLabels), TotalColumns: totalColumns}

	var wers []float64
	totalErrors, totalRefTokens := 0, 0
	for _, st := range bySpeaker {
		set.TotalFully += st.FullyMatch
		set.TotalPartial += st.PartialMatch
		set.TotalMismatch += st.Mismatch
		set.TotalGap += st.Gap
		totalErrors += st.Substitutions + st.Insertions + st.Deletions
		totalRefTokens += st.ReferenceTokens
	}
	for _, l := range uniqueLabels {
		if st, ok := bySpeaker[l]; ok {
			wers = append(wers, st.WER)
		}
	}
	sort.Float64s(wers)
	if len(wers) > 0 {
		sum := 0.0
		for _, w := range wers {
			sum += w
		}
		set.MeanWER = sum / float64(len(wers))
	}
	if totalRefTokens > 0 {
		set.AggregateWER = float64(totalErrors) / float64(totalRefTokens)
	}
	return set
}
