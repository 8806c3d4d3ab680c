package domain

// StyleAdvice is the consumer-facing narration of a score result, produced
// by the stylist service or composed locally from the top fixes when that
// service is down.
type StyleAdvice struct {
	Headline  string   `json:"headline"`
	Narrative string   `json:"narrative,omitempty"`
	Tips      []string `json:"tips,omitempty"`
	Source    string   `json:"source"` // "stylist" or "fallback"
}

// ScoredAdvice bundles a score with its narration.
type ScoredAdvice struct {
	Result ScoreResult `json:"result"`
	Advice StyleAdvice `json:"advice"`
}
