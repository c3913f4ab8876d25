// Package inference holds the placeholder classifiers that stand in
// for real ML models. Results are uniform-random draws over fixed
// tables, not content-derived.
package inference

import (
	"os"

	"shetkarai/models"
)

// Preprocess verifies the uploaded image exists on disk and returns the
// non-nil sentinel the classifiers expect. The demo pipeline performs
// no actual pixel processing.
func Preprocess(path string) *models.Image {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return &models.Image{Path: path}
}
