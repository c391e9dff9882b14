// Package handlers implements the JSON HTTP handlers exposing the
// alignment core: the three alignment entry points, the post-processing
// derivations, and alignment statistics.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dialogalign/msalign/pkg/msalign"
)

func decodeOrBadRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	http.Error(w, `{"error": "`+err.Error()+`"}`, status)
}

func optionsFrom(partialBound int) msalign.Options {
	opts := msalign.DefaultOptions()
	if partialBound > 0 {
		opts.PartialBound = partialBound
	}
	return opts
}

// AlignRequest is the shared request body for the three alignment
// entry points.
type AlignRequest struct {
	Hypothesis      []string `json:"hypothesis"`
	Reference       []string `json:"reference"`
	ReferenceLabels []string `json:"reference_labels"`
	PartialBound    int      `json:"partial_bound,omitempty"`
}

// AlignResponse carries the aligned grid and the unique speaker set the
// grid's reference rows are ordered by.
type AlignResponse struct {
	Grid     [][]string `json:"grid"`
	Speakers []string   `json:"speakers"`
}

// WithoutSegmentHandler handles POST /api/align/without-segment.
func WithoutSegmentHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	grid, speakers, err := msalign.AlignWithoutSegment(req.Hypothesis, req.Reference, req.ReferenceLabels, optionsFrom(req.PartialBound))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, AlignResponse{Grid: grid, Speakers: speakers})
}

// AutoSegmentHandler handles POST /api/align/auto-segment.
func AutoSegmentHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	grid, speakers, _, err := msalign.AlignWithAutoSegment(req.Hypothesis, req.Reference, req.ReferenceLabels, optionsFrom(req.PartialBound))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, AlignResponse{Grid: grid, Speakers: speakers})
}

// ManualSegmentRequest extends AlignRequest with explicit segmentation
// parameters.
type ManualSegmentRequest struct {
	AlignRequest
	SegmentLength int `json:"segment_length"`
	BarrierLength int `json:"barrier_length"`
}

// ManualSegmentHandler handles POST /api/align/manual-segment.
func ManualSegmentHandler(w http.ResponseWriter, r *http.Request) {
	var req ManualSegmentRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	grid, speakers, err := msalign.AlignWithManualSegment(
		req.Hypothesis, req.Reference, req.ReferenceLabels,
		req.SegmentLength, req.BarrierLength, optionsFrom(req.PartialBound))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, AlignResponse{Grid: grid, Speakers: speakers})
}

// GridRequest carries a previously computed alignment grid, for the
// endpoints that operate purely on post-processing.
type GridRequest struct {
	Grid         [][]string `json:"grid"`
	PartialBound int        `json:"partial_bound,omitempty"`
}

// MatchResultResponse carries one category string per aligned column.
type MatchResultResponse struct {
	Categories []string `json:"categories"`
}

// MatchResultHandler handles POST /api/align/match-result.
func MatchResultHandler(w http.ResponseWriter, r *http.Request) {
	var req GridRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	cats := msalign.TokenMatchResult(req.Grid, optionsFrom(req.PartialBound).PartialBound)
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	writeJSON(w, MatchResultResponse{Categories: out})
}

// IndicesResponse carries one index slice per reference row.
type IndicesResponse struct {
	Indices [][]int `json:"indices"`
}

// IndicesHandler handles POST /api/align/indices.
func IndicesHandler(w http.ResponseWriter, r *http.Request) {
	var req GridRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	writeJSON(w, IndicesResponse{Indices: msalign.AlignIndices(req.Grid)})
}

// RefOriginalIndicesRequest names the reference labels and the unique
// speaker ordering to group positions by.
type RefOriginalIndicesRequest struct {
	ReferenceLabels []string `json:"reference_labels"`
	Speakers        []string `json:"speakers"`
}

// RefOriginalIndicesHandler handles POST /api/align/ref-original-indices.
func RefOriginalIndicesHandler(w http.ResponseWriter, r *http.Request) {
	var req RefOriginalIndicesRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	writeJSON(w, IndicesResponse{Indices: msalign.RefOriginalIndices(req.ReferenceLabels, req.Speakers)})
}

// SpeakerLabelsRequest carries an aligned grid and the original
// hypothesis speaker labels to project onto it.
type SpeakerLabelsRequest struct {
	Grid             [][]string `json:"grid"`
	HypoSpeakerLabel []string   `json:"hypo_speaker_label"`
}

// SpeakerLabelsResponse carries the aligned hypothesis speaker labels.
type SpeakerLabelsResponse struct {
	Labels []string `json:"labels"`
}

// SpeakerLabelsHandler handles POST /api/align/speaker-labels.
func SpeakerLabelsHandler(w http.ResponseWriter, r *http.Request) {
	var req SpeakerLabelsRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	writeJSON(w, SpeakerLabelsResponse{Labels: msalign.AlignedHypoSpeakerLabel(req.Grid, req.HypoSpeakerLabel)})
}

// StatsRequest carries an aligned grid and the speaker ordering it was
// produced with.
type StatsRequest struct {
	Grid         [][]string `json:"grid"`
	Speakers     []string   `json:"speakers"`
	PartialBound int        `json:"partial_bound,omitempty"`
}

// StatsResponse carries per-speaker and aggregate word-error-rate stats.
type StatsResponse struct {
	BySpeaker map[string]*msalign.SpeakerStats `json:"by_speaker"`
	Set       *msalign.SetStats                `json:"set"`
}

// StatsHandler handles POST /api/align/stats.
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest
	if !decodeOrBadRequest(w, r, &req) {
		return
	}
	bySpeaker, set := msalign.AlignmentStats(req.Grid, req.Speakers, optionsFrom(req.PartialBound).PartialBound)
	writeJSON(w, StatsResponse{BySpeaker: bySpeaker, Set: set})
}
