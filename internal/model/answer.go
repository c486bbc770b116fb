package model

// Answer is the Likert value picked for a question. Timestamp is epoch
// milliseconds and only used for diagnostics.
type Answer struct {
	Value     int   `json:"value"`
	Timestamp int64 `json:"timestamp"`
}

// AnswerSet maps question IDs to the latest answer given.
type AnswerSet map[string]Answer

// Clone returns a shallow copy safe to mutate.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
