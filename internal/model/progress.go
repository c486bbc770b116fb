package model

const ProgressVersion = "1.0"

// TestProgress is the snapshot saved after every recorded answer so an
// interrupted test can be resumed.
type TestProgress struct {
	CurrentQuestion int        `json:"currentQuestion"`
	Answers         AnswerSet  `json:"answers"`
	Questions       []Question `json:"questions"`
	Timestamp       int64      `json:"timestamp"`
	Version         string     `json:"version"`
}
