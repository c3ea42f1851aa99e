package engine

import "github.com/danieljhkim/irops/internal/aggregate"

// Destination identifies where a result was delivered.
type Destination string

const (
	DestStdout    Destination = "stdout"
	DestFile      Destination = "file"
	DestClipboard Destination = "clipboard"
)

// RunResult represents the outcome of a run.
type RunResult struct {
	// XMLPath is the input that was read
	XMLPath string `json:"xmlPath"`

	// Mode is the aggregation mode used
	Mode aggregate.Mode `json:"mode"`

	// Empty is true when the document has no typed layer elements.
	// No destination is touched in that case.
	Empty bool `json:"empty"`

	// Destination is where the result was delivered (empty when Empty)
	Destination Destination `json:"destination,omitempty"`

	// OutputPath is the written file (file destination only)
	OutputPath string `json:"outputPath,omitempty"`

	// Operators is the number of typed layer elements found
	Operators int `json:"operators"`

	// Distinct is the number of distinct operator types
	Distinct int `json:"distinct"`

	// Names holds the sorted distinct names (unique mode)
	Names []string `json:"names,omitempty"`

	// Entries holds the sorted per-name counts (count mode)
	Entries []aggregate.Entry `json:"entries,omitempty"`

	// Text is the rendered output that was delivered
	Text string `json:"-"`
}
