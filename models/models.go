// Package models defines the shared value objects passed between the
// HTTP layer, services and adapters.
package models

// Principal identifies an authenticated user as reported by the
// identity backend.
type Principal struct {
	ID    string
	Email string
}

// Profile is the per-user record held by the identity backend beyond
// bare credentials.
type Profile struct {
	ID                 string `json:"id" db:"id"`
	Username           string `json:"username" db:"username"`
	LanguagePreference string `json:"language_preference" db:"language_preference"`
}

// Image is the placeholder payload handed to the classifiers. The demo
// pipeline never inspects pixel data; preprocessing only verifies the
// uploaded file exists.
type Image struct {
	Path string
}

// DiagnosisResult is the per-request outcome of a disease detection.
type DiagnosisResult struct {
	Disease         string   `json:"disease"`
	Confidence      float64  `json:"confidence"`
	Recommendations []string `json:"recommendations"`
}

// SoilProperties carries the simulated numeric soil measurements.
type SoilProperties struct {
	PH            float64 `json:"ph"`
	Nitrogen      float64 `json:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus"`
	Potassium     float64 `json:"potassium"`
	OrganicMatter float64 `json:"organic_matter"`
}

// SoilResult is the per-request outcome of a soil analysis.
type SoilResult struct {
	SoilType        string         `json:"soil_type"`
	Properties      SoilProperties `json:"properties"`
	Recommendations []string       `json:"recommendations"`
}

// WeatherSnapshot is the typed view of an external weather API
// response. It is never persisted.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
	City        string  `json:"city,omitempty"`
}
