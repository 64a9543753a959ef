package types

// Finding is one match of a rule against one line of one file. Findings are
// created by the line matcher and never mutated or deduplicated afterwards.
type Finding struct {
	Path       string `json:"path"`
	Rule       string `json:"rule"`
	Line       string `json:"line"`        // matched line with surrounding whitespace trimmed
	LineNumber int    `json:"line_number"` // 1-based
}
