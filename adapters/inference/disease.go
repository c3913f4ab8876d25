package inference

import (
	"context"
	"math/rand"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/internal/i18n"
	"shetkarai/models"
	"shetkarai/ports"
)

// DiseaseDetector is the placeholder plant-disease classifier.
type DiseaseDetector struct {
	rng *lockedRand
}

// NewDiseaseDetector creates a detector. Pass a seeded rng for
// deterministic output; nil seeds from the clock.
func NewDiseaseDetector(rng *rand.Rand) ports.DiseaseClassifier {
	return &DiseaseDetector{rng: newLockedRand(rng)}
}

// Classify draws a random disease class and confidence and resolves the
// translated name and treatment list. A nil image is the only error
// path.
func (d *DiseaseDetector) Classify(ctx context.Context, img *models.Image, l lang.Language) (*models.DiagnosisResult, error) {
	if img == nil {
		return nil, errors.InvalidInput("invalid image data")
	}
	l = lang.Normalize(l.String())

	class := d.rng.Intn(i18n.DiseaseClassCount)
	confidence := d.rng.Uniform(0.70, 0.99)

	return &models.DiagnosisResult{
		Disease:         i18n.DiseaseName(class, l),
		Confidence:      confidence,
		Recommendations: i18n.DiseaseRecommendations(class, l),
	}, nil
}
