// Package vision validates generated room images against layout plans.
//
// The checks are geometric heuristics, not learned models: furniture is
// found by edge detection and connected-component analysis, classified by
// position and aspect-ratio bands, then compared to the plan for position,
// scale, and layout-rule compliance.
//
// # Degraded results
//
// Image analysis can fail to establish a usable spatial reference (missing
// room dimensions, unusable image). That is not an error: the validator
// returns a report with neutral component scores marked [Score.Degraded]
// and a violation explaining why. Callers that need to distinguish "scored
// poorly" from "could not score" check the flag.
package vision

// Score is one component score in [0, 1]. Degraded means the value is a
// neutral fallback rather than a measurement and should not be compared
// against quality thresholds.
type Score struct {
	Value    float64 `json:"value"`
	Degraded bool    `json:"degraded,omitempty"`
}
