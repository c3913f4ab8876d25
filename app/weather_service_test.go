package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/internal/i18n"
	"shetkarai/models"
)

type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) Current(ctx context.Context, lat, lon string) (*models.WeatherSnapshot, error) {
	args := m.Called(ctx, lat, lon)
	snapshot, _ := args.Get(0).(*models.WeatherSnapshot)
	return snapshot, args.Error(1)
}

func TestAdvisories_AllThreeRulesFire(t *testing.T) {
	snapshot := &models.WeatherSnapshot{Temperature: 40, Humidity: 85, Condition: "Rain"}

	got := Advisories(snapshot, lang.Hindi)

	// Deterministic order: temperature, humidity, condition
	require.Len(t, got, 3)
	assert.Equal(t, []string{
		"उच्च तापमान चेतावनी: फसलों के लिए पर्याप्त पानी सुनिश्चित करें।",
		"उच्च आर्द्रता: संभावित कवक रोगों से सावधान रहें।",
		"वर्षा की उम्मीद है: कीटनाशक के छिड़काव को रोक दें।",
	}, got)
}

func TestAdvisories_TemperatureBranches(t *testing.T) {
	hot := Advisories(&models.WeatherSnapshot{Temperature: 36, Humidity: 50, Condition: "Clouds"}, lang.English)
	assert.Equal(t, []string{string(i18n.AdvisoryHighTemp)}, hot)

	cold := Advisories(&models.WeatherSnapshot{Temperature: 5, Humidity: 50, Condition: "Clouds"}, lang.English)
	assert.Equal(t, []string{string(i18n.AdvisoryLowTemp)}, cold)
}

func TestAdvisories_ConditionMatching(t *testing.T) {
	for _, condition := range []string{"Rain", "THUNDERSTORM", "drizzle"} {
		got := Advisories(&models.WeatherSnapshot{Temperature: 20, Humidity: 50, Condition: condition}, lang.English)
		assert.Equal(t, []string{string(i18n.AdvisoryRainfall)}, got, "condition %q", condition)
	}

	clear := Advisories(&models.WeatherSnapshot{Temperature: 20, Humidity: 50, Condition: "Clear"}, lang.English)
	assert.Equal(t, []string{string(i18n.AdvisoryClearWeather)}, clear)
}

func TestAdvisories_NoRuleFired(t *testing.T) {
	got := Advisories(&models.WeatherSnapshot{Temperature: 20, Humidity: 50, Condition: "Clouds"}, lang.Hindi)
	assert.Equal(t, []string{"इस समय कोई विशिष्ट सिफारिशें नहीं हैं।"}, got)
}

func TestAdvisories_NilSnapshot(t *testing.T) {
	got := Advisories(nil, lang.English)
	assert.Equal(t, []string{string(i18n.AdvisoryNoWeatherData)}, got)
}

func TestAdvisories_BoundaryValues(t *testing.T) {
	// 35 and 10 do not trigger temperature rules; 80 and 30 do not
	// trigger humidity rules
	got := Advisories(&models.WeatherSnapshot{Temperature: 35, Humidity: 80, Condition: "Clouds"}, lang.English)
	assert.Equal(t, []string{string(i18n.AdvisoryNone)}, got)

	got = Advisories(&models.WeatherSnapshot{Temperature: 10, Humidity: 30, Condition: "Clouds"}, lang.English)
	assert.Equal(t, []string{string(i18n.AdvisoryNone)}, got)
}

func TestWeatherService_Advise(t *testing.T) {
	provider := new(MockWeatherProvider)
	snapshot := &models.WeatherSnapshot{Temperature: 36, Humidity: 50, Condition: "Clear", City: "Pune"}
	provider.On("Current", mock.Anything, "18.52", "73.85").Return(snapshot, nil)

	svc := NewWeatherService(provider)
	got, recommendations, err := svc.Advise(context.Background(), "18.52", "73.85", lang.English)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
	assert.Equal(t, []string{
		string(i18n.AdvisoryHighTemp),
		string(i18n.AdvisoryClearWeather),
	}, recommendations)
	provider.AssertExpectations(t)
}

func TestWeatherService_Advise_UpstreamFailure(t *testing.T) {
	provider := new(MockWeatherProvider)
	provider.On("Current", mock.Anything, "0", "0").Return(nil, nil)

	svc := NewWeatherService(provider)
	_, _, err := svc.Advise(context.Background(), "0", "0", lang.English)
	require.Error(t, err)
	assert.Equal(t, errors.CodeExternalService, errors.GetCode(err))
}
