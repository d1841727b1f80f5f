// Package domain defines the core value types for WER evaluation:
// scored reference/hypothesis pairs, per-model statistics records, and
// cross-model comparison tables. All types are plain immutable values
// with no I/O or behavior beyond presentation helpers.
package domain

// ScoredPair represents one evaluated transcript: a reference text, the
// hypothesis produced by a model, and the resulting word error rate.
// The WER field is derived by the scorer and never edited directly.
type ScoredPair struct {
	// ID identifies the evaluated file, typically the filename stem.
	ID string `json:"id"`

	// Reference is the ground-truth transcript text.
	Reference string `json:"reference"`

	// Hypothesis is the model-produced transcript text.
	Hypothesis string `json:"hypothesis"`

	// WER is the word error rate as a percentage in [0, 100].
	WER float64 `json:"wer"`
}
