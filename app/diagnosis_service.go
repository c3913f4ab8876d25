package app

import (
	"context"
	"mime/multipart"

	"shetkarai/adapters/inference"
	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/internal/upload"
	"shetkarai/models"
	"shetkarai/ports"
)

// DiagnosisService runs the disease-detection pipeline: save the
// upload, preprocess, classify.
type DiagnosisService struct {
	uploads    *upload.Saver
	classifier ports.DiseaseClassifier
}

func NewDiagnosisService(uploads *upload.Saver, classifier ports.DiseaseClassifier) *DiagnosisService {
	return &DiagnosisService{uploads: uploads, classifier: classifier}
}

// Detect saves the uploaded photo and returns a diagnosis. Disallowed
// file types yield a VALIDATION_ERROR; a vanished file after save
// yields an INTERNAL_ERROR.
func (s *DiagnosisService) Detect(ctx context.Context, fh *multipart.FileHeader, l lang.Language) (*models.DiagnosisResult, error) {
	path, err := s.uploads.Save(fh)
	if err != nil {
		return nil, err
	}

	img := inference.Preprocess(path)
	if img == nil {
		return nil, errors.InternalError("failed to process image")
	}

	return s.classifier.Classify(ctx, img, l)
}

// SoilService runs the soil-analysis pipeline with the same shape as
// DiagnosisService.
type SoilService struct {
	uploads  *upload.Saver
	analyzer ports.SoilClassifier
}

func NewSoilService(uploads *upload.Saver, analyzer ports.SoilClassifier) *SoilService {
	return &SoilService{uploads: uploads, analyzer: analyzer}
}

// Analyze saves the uploaded photo and returns a soil analysis.
func (s *SoilService) Analyze(ctx context.Context, fh *multipart.FileHeader, l lang.Language) (*models.SoilResult, error) {
	path, err := s.uploads.Save(fh)
	if err != nil {
		return nil, err
	}

	img := inference.Preprocess(path)
	if img == nil {
		return nil, errors.InternalError("failed to process image")
	}

	return s.analyzer.Analyze(ctx, img, l)
}
