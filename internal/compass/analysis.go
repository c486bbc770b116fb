package compass

import (
	"fmt"
	"math"
	"unicode/utf8"

	"crypto_compass_backend/internal/model"
)

// ValidateResult checks the fields renderers rely on.
func ValidateResult(r *model.Result) bool {
	if r == nil {
		return false
	}
	if r.Orientation == "" || r.Description == "" {
		return false
	}
	if r.Levels.Centralization == "" || r.Levels.PrivatePublic == "" {
		return false
	}
	if !inRange(r.Scores.Centralization) || !inRange(r.Scores.PrivatePublic) {
		return false
	}
	return KnownOrientation(r.Orientation)
}

func inRange(score float64) bool {
	return !math.IsNaN(score) && score >= -100 && score <= 100
}

const (
	ClosenessVeryClose   = "foarte aproape"
	ClosenessClose       = "aproape"
	ClosenessModerate    = "moderat diferit"
	ClosenessVeryDistant = "foarte diferit"
)

type ScoreDifferences struct {
	Centralization  float64 `json:"centralization"`
	PrivatePublic   float64 `json:"privatePublic"`
	SameOrientation bool    `json:"orientation"`
}

type ComparisonAnalysis struct {
	SameQuadrant bool   `json:"sameQuadrant"`
	Closeness    string `json:"closeness"`
}

type Comparison struct {
	Similarity  float64            `json:"similarity"`
	Differences ScoreDifferences   `json:"differences"`
	Analysis    ComparisonAnalysis `json:"analysis"`
}

// CompareResults rates how close two results are on the rounded scores.
// Invalid input yields a zero similarity.
func CompareResults(a, b *model.Result) Comparison {
	if !ValidateResult(a) || !ValidateResult(b) {
		return Comparison{Analysis: ComparisonAnalysis{Closeness: ClosenessVeryDistant}}
	}

	dc := math.Abs(a.Scores.Centralization - b.Scores.Centralization)
	dp := math.Abs(a.Scores.PrivatePublic - b.Scores.PrivatePublic)
	similarity := math.Max(0, 100-(dc+dp)/2)

	return Comparison{
		Similarity: RoundScore(similarity),
		Differences: ScoreDifferences{
			Centralization:  RoundScore(dc),
			PrivatePublic:   RoundScore(dp),
			SameOrientation: a.Orientation == b.Orientation,
		},
		Analysis: ComparisonAnalysis{
			SameQuadrant: comparisonQuadrant(a.Scores.Centralization, a.Scores.PrivatePublic) ==
				comparisonQuadrant(b.Scores.Centralization, b.Scores.PrivatePublic),
			Closeness: closeness(similarity),
		},
	}
}

func closeness(similarity float64) string {
	switch {
	case similarity > 80:
		return ClosenessVeryClose
	case similarity > 60:
		return ClosenessClose
	case similarity > 40:
		return ClosenessModerate
	default:
		return ClosenessVeryDistant
	}
}

type MostCommon struct {
	Orientation string `json:"orientation"`
	Count       int    `json:"count"`
	Percentage  int    `json:"percentage"`
}

type ResultsStatistics struct {
	Total         int             `json:"total"`
	AverageScores model.RawScores `json:"averageScores"`
	Distributions map[string]int  `json:"distributions"`
	MostCommon    *MostCommon     `json:"mostCommon"`
}

// ResultStatistics aggregates valid results. Ties for the most common
// orientation go to the one seen first.
func ResultStatistics(results []model.Result) ResultsStatistics {
	st := ResultsStatistics{Distributions: map[string]int{}}

	var sumC, sumP float64
	var order []string
	for i := range results {
		r := &results[i]
		if !ValidateResult(r) {
			continue
		}
		st.Total++
		sumC += r.Scores.Centralization
		sumP += r.Scores.PrivatePublic
		if _, ok := st.Distributions[r.Orientation]; !ok {
			order = append(order, r.Orientation)
		}
		st.Distributions[r.Orientation]++
	}
	if st.Total == 0 {
		return st
	}

	st.AverageScores = model.RawScores{
		Centralization: RoundScore(sumC / float64(st.Total)),
		PrivatePublic:  RoundScore(sumP / float64(st.Total)),
	}

	best := &MostCommon{}
	for _, o := range order {
		if n := st.Distributions[o]; n > best.Count {
			best = &MostCommon{Orientation: o, Count: n}
		}
	}
	best.Percentage = percent(best.Count, st.Total)
	st.MostCommon = best
	return st
}

// Recommendations suggests products matching strong positions on either axis.
func Recommendations(r *model.Result) []string {
	if !ValidateResult(r) {
		return []string{}
	}
	recs := []string{}
	switch c := r.Scores.Centralization; {
	case c < -50:
		recs = append(recs,
			"Explorează exchange-uri centralizate precum Coinbase sau Binance pentru o experiență mai sigură",
			"Consideră stablecoin-uri regulate pentru tranzacții mai stabile")
	case c > 50:
		recs = append(recs,
			"Încearcă exchange-uri descentralizate precum Uniswap sau SushiSwap",
			"Explorează protocoale DeFi pentru mai multă autonomie financiară")
	}
	switch p := r.Scores.PrivatePublic; {
	case p < -50:
		recs = append(recs,
			"Investește în Bitcoin sau Ethereum pentru potențial de creștere",
			"Explorează NFT-uri și token-uri de gaming pentru profit")
	case p > 50:
		recs = append(recs,
			"Sprijină proiecte de incluziune financiară și impact social",
			"Consideră investiții în blockchain-uri eco-friendly precum Algorand")
	}
	return recs
}

var ShareHashtags = []string{"#CryptoCompass", "#Web3", "#Blockchain"}

const shareExcerptLen = 200

type ShareSummary struct {
	Orientation string          `json:"orientation"`
	Scores      model.RawScores `json:"scores"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Hashtags    []string        `json:"hashtags"`
	ShareText   string          `json:"shareText"`
}

// Share builds the payload for social sharing, or nil for an invalid result.
func Share(r *model.Result, url string) *ShareSummary {
	if !ValidateResult(r) {
		return nil
	}
	return &ShareSummary{
		Orientation: r.Orientation,
		Scores: model.RawScores{
			Centralization: r.Scores.Centralization,
			PrivatePublic:  r.Scores.PrivatePublic,
		},
		Description: excerpt(r.Description, shareExcerptLen) + "...",
		URL:         url,
		Hashtags:    append([]string(nil), ShareHashtags...),
		ShareText: fmt.Sprintf("Am descoperit că sunt %s în ecosistemul crypto! "+
			"Descoperă și tu orientarea ta cu Busola Politică Crypto.", r.Orientation),
	}
}

func excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
