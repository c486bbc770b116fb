// Package compass scores Likert answers on the centralization and
// private/public axes and maps the resulting point to an archetype.
package compass

import "crypto_compass_backend/internal/model"

// Pool returns a copy of the statements of one axis.
func Pool(dim model.Dimension) []model.Question {
	var src []model.Question
	switch dim {
	case model.DimensionCentralization:
		src = centralizationQuestions
	case model.DimensionPrivatePublic:
		src = privatePublicQuestions
	}
	out := make([]model.Question, len(src))
	copy(out, src)
	return out
}

// Bank returns every statement, centralization pool first.
func Bank() []model.Question {
	out := make([]model.Question, 0, len(centralizationQuestions)+len(privatePublicQuestions))
	out = append(out, centralizationQuestions...)
	return append(out, privatePublicQuestions...)
}

// QuestionByID looks a statement up in the bank.
func QuestionByID(id string) (model.Question, bool) {
	for _, q := range centralizationQuestions {
		if q.ID == id {
			return q, true
		}
	}
	for _, q := range privatePublicQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}
