package intent

// Definition is one intent and the exemplar phrases that anchor it.
type Definition struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Exemplars   []string `yaml:"exemplars" json:"exemplars"`
}

// Score is the outcome of classifying one utterance.
// Confidence always equals AllScores[Intent].
type Score struct {
	Intent     string             `json:"intent"`
	Confidence float64            `json:"confidence"`
	AllScores  map[string]float64 `json:"all_scores"`
}

type catalogFile struct {
	Intents []Definition `yaml:"intents"`
}
