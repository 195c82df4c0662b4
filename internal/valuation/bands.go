package valuation

import "github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"

// Bands defines the 5-level valuation mapping, highest threshold first.
var Bands = []struct {
	MinPercent float64
	Band       model.Band
}{
	{115, model.BandSignificantlyOvervalued},
	{90, model.BandModeratelyOvervalued},
	{75, model.BandFairValue},
	{50, model.BandModeratelyUndervalued},
}

// DefaultBand covers everything below 50 percent.
var DefaultBand = model.BandSignificantlyUndervalued

// ClassifyBand maps an indicator percent to its valuation band.
func ClassifyBand(percent float64) model.Band {
	for _, b := range Bands {
		if percent >= b.MinPercent {
			return b.Band
		}
	}
	return DefaultBand
}
