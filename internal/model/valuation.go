package model

// Band labels a valuation region of the indicator.
type Band string

const (
	BandSignificantlyUndervalued Band = "significantly undervalued"
	BandModeratelyUndervalued    Band = "moderately undervalued"
	BandFairValue                Band = "fair value"
	BandModeratelyOvervalued     Band = "moderately overvalued"
	BandSignificantlyOvervalued  Band = "significantly overvalued"
)

// Assessment is the valuation engine's verdict for one country, based
// on its latest populated year.
type Assessment struct {
	Country    string  `json:"country"`
	Year       int     `json:"year"`
	Percent    float64 `json:"percent"`
	Band       Band    `json:"band"`
	Mean       float64 `json:"historical_mean"`
	DeltaMean  float64 `json:"delta_vs_mean"`
	WarningMsg string  `json:"warning,omitempty"`
}
