package inference

import (
	"context"
	"math"
	"math/rand"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/internal/i18n"
	"shetkarai/models"
	"shetkarai/ports"
)

// SoilAnalyzer is the placeholder soil-type classifier.
type SoilAnalyzer struct {
	rng *lockedRand
}

// NewSoilAnalyzer creates an analyzer. Pass a seeded rng for
// deterministic output; nil seeds from the clock.
func NewSoilAnalyzer(rng *rand.Rand) ports.SoilClassifier {
	return &SoilAnalyzer{rng: newLockedRand(rng)}
}

// Analyze draws a random soil type and property set, then resolves the
// translated care list plus exactly one pH-band advisory.
func (a *SoilAnalyzer) Analyze(ctx context.Context, img *models.Image, l lang.Language) (*models.SoilResult, error) {
	if img == nil {
		return nil, errors.InvalidInput("invalid image data")
	}
	l = lang.Normalize(l.String())

	soilType := a.rng.Intn(i18n.SoilTypeCount)
	properties := models.SoilProperties{
		PH:            round1(a.rng.Uniform(5.5, 7.5)),
		Nitrogen:      math.Round(a.rng.Uniform(10, 40)),
		Phosphorus:    math.Round(a.rng.Uniform(5, 20)),
		Potassium:     math.Round(a.rng.Uniform(5, 20)),
		OrganicMatter: round1(a.rng.Uniform(1, 5)),
	}

	recommendations := i18n.SoilRecommendations(soilType, l)
	recommendations = append(recommendations, i18n.PHRecommendation(BandForPH(properties.PH), l))

	return &models.SoilResult{
		SoilType:        i18n.SoilName(soilType, l),
		Properties:      properties,
		Recommendations: recommendations,
	}, nil
}

// BandForPH classifies a pH reading. Values of exactly 6.0 or 7.2 are
// optimal.
func BandForPH(ph float64) i18n.PHBand {
	switch {
	case ph < 6.0:
		return i18n.PHLow
	case ph > 7.2:
		return i18n.PHHigh
	default:
		return i18n.PHOptimal
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
