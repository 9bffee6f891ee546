package advisor

// SuggestionRequest contains the metadata of one duplicate pair sent to
// the model. Contents are identical by definition, so only paths and
// timestamps are shared.
type SuggestionRequest struct {
	PathA    string `json:"path_a"`
	PathB    string `json:"path_b"`
	SizeA    int64  `json:"size_a"`
	SizeB    int64  `json:"size_b"`
	ModTimeA string `json:"mod_time_a"`
	ModTimeB string `json:"mod_time_b"`
}

// Suggestion is the advisor's recommendation for one duplicate pair.
type Suggestion struct {
	Keep       string `json:"keep"`       // path of the copy to keep
	Reason     string `json:"reason"`     // short explanation
	Confidence int    `json:"confidence"` // 0-100
	TokensUsed int    `json:"tokens_used"`
}
