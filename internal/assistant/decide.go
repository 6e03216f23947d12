package assistant

import "conversational-assistant/internal/intent"

// Decide maps a classification onto a branch. Scores below threshold always
// go to the generative branch, whatever their label.
func Decide(score intent.Score, threshold float64, message string) Decision {
	d := Decision{Branch: BranchGenerative, Input: message}
	if score.Confidence < threshold {
		return d
	}

	switch score.Intent {
	case intent.IntentMath:
		d.Branch = BranchMath
	case intent.IntentSearch:
		d.Branch = BranchSearch
	}
	return d
}
