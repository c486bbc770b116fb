package model

const ResultVersion = "1.0"

type RawScores struct {
	Centralization float64 `json:"centralization"`
	PrivatePublic  float64 `json:"privatePublic"`
}

// Scores holds both axis scores rounded to one decimal plus the unrounded
// values used for compass placement and archetype lookup.
type Scores struct {
	Centralization float64   `json:"centralization"`
	PrivatePublic  float64   `json:"privatePublic"`
	Raw            RawScores `json:"raw"`
}

type Levels struct {
	Centralization string `json:"centralization"`
	PrivatePublic  string `json:"privatePublic"`
}

type AnsweredCounts struct {
	Centralization int `json:"centralization"`
	PrivatePublic  int `json:"privatePublic"`
	Total          int `json:"total"`
}

type ResultMetadata struct {
	QuestionsAnswered AnsweredCounts `json:"questionsAnswered"`
	Timestamp         int64          `json:"timestamp"`
	Version           string         `json:"version"`
}

// Result is the outcome of one completed test.
// swagger:model Result
type Result struct {
	Scores      Scores         `json:"scores"`
	Levels      Levels         `json:"levels"`
	Orientation string         `json:"orientation"`
	Description string         `json:"description"`
	Archetype   Archetype      `json:"archetype"`
	Metadata    ResultMetadata `json:"metadata"`
}
