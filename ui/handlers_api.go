package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "ShetkarAI API is running",
	})
}

// apiLang resolves the request language: an explicit parameter wins,
// otherwise the session value, otherwise the default.
func (s *Server) apiLang(c *gin.Context, explicit string) lang.Language {
	if explicit != "" {
		return lang.Normalize(explicit)
	}
	return s.sessionLang(c)
}

func (s *Server) handleDetectDisease(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}
	l := s.apiLang(c, c.PostForm("language"))

	result, err := s.diagnosis.Detect(c.Request.Context(), fh, l)
	if err != nil {
		s.writeProcessingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAnalyzeSoil(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}
	l := s.apiLang(c, c.PostForm("language"))

	result, err := s.soil.Analyze(c.Request.Context(), fh, l)
	if err != nil {
		s.writeProcessingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleWeather(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude and longitude parameters are required"})
		return
	}
	l := s.apiLang(c, c.Query("language"))

	snapshot, recommendations, err := s.weather.Advise(c.Request.Context(), lat, lon, l)
	if err != nil {
		s.logger.Warn("weather advice failed", zap.String("lat", lat), zap.String("lon", lon), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weather data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weather":         snapshot,
		"recommendations": recommendations,
	})
}

// writeProcessingError maps a pipeline error onto the API contract:
// validation failures are 400s, everything else is a 500 carrying the
// error text.
func (s *Server) writeProcessingError(c *gin.Context, err error) {
	switch errors.GetCode(err) {
	case errors.CodeValidationError:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file format"})
	default:
		s.logger.Error("image pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
