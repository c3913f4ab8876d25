package ports

import (
	"context"

	"shetkarai/domain/lang"
	"shetkarai/models"
)

// DiseaseClassifier produces a plant-disease diagnosis for an uploaded
// image. The shipped implementation is a placeholder that draws random
// labels; a real model can replace it without touching translation or
// routing logic.
type DiseaseClassifier interface {
	Classify(ctx context.Context, img *models.Image, l lang.Language) (*models.DiagnosisResult, error)
}

// SoilClassifier produces a soil-type analysis for an uploaded image.
type SoilClassifier interface {
	Analyze(ctx context.Context, img *models.Image, l lang.Language) (*models.SoilResult, error)
}
