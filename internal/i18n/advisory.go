package i18n

import (
	"shetkarai/domain/lang"
)

// Advisory is a canned weather-based farming message, identified by its
// English wording.
type Advisory string

const (
	AdvisoryHighTemp      Advisory = "High temperature alert: Ensure adequate water for crops."
	AdvisoryLowTemp       Advisory = "Low temperature alert: Protect sensitive crops from frost."
	AdvisoryHighHumidity  Advisory = "High humidity: Be aware of potential fungal diseases."
	AdvisoryLowHumidity   Advisory = "Low humidity: Increase watering frequency."
	AdvisoryRainfall      Advisory = "Rainfall expected: Hold off on pesticide application."
	AdvisoryClearWeather  Advisory = "Clear weather: Good time for harvesting or planting."
	AdvisoryNone          Advisory = "No specific recommendations at this time."
	AdvisoryNoWeatherData Advisory = "Unable to generate recommendations without weather data."
)

var advisoryTranslations = map[Advisory]map[lang.Language]string{
	AdvisoryHighTemp: {
		lang.English: string(AdvisoryHighTemp),
		lang.Hindi:   "उच्च तापमान चेतावनी: फसलों के लिए पर्याप्त पानी सुनिश्चित करें।",
	},
	AdvisoryLowTemp: {
		lang.English: string(AdvisoryLowTemp),
		lang.Hindi:   "निम्न तापमान चेतावनी: संवेदनशील फसलों को पाले से बचाएं।",
	},
	AdvisoryHighHumidity: {
		lang.English: string(AdvisoryHighHumidity),
		lang.Hindi:   "उच्च आर्द्रता: संभावित कवक रोगों से सावधान रहें।",
	},
	AdvisoryLowHumidity: {
		lang.English: string(AdvisoryLowHumidity),
		lang.Hindi:   "कम आर्द्रता: पानी देने की आवृत्ति बढ़ाएं।",
	},
	AdvisoryRainfall: {
		lang.English: string(AdvisoryRainfall),
		lang.Hindi:   "वर्षा की उम्मीद है: कीटनाशक के छिड़काव को रोक दें।",
	},
	AdvisoryClearWeather: {
		lang.English: string(AdvisoryClearWeather),
		lang.Hindi:   "साफ मौसम: फसल काटने या बोने का अच्छा समय।",
	},
	AdvisoryNone: {
		lang.English: string(AdvisoryNone),
		lang.Hindi:   "इस समय कोई विशिष्ट सिफारिशें नहीं हैं।",
	},
	AdvisoryNoWeatherData: {
		lang.English: string(AdvisoryNoWeatherData),
		lang.Hindi:   "मौसम डेटा के बिना सिफारिशें उत्पन्न करने में असमर्थ।",
	},
}

// AdvisoryText returns the translated wording of a weather advisory.
// An advisory missing from the table passes through untranslated.
func AdvisoryText(a Advisory, l lang.Language) string {
	entry, ok := advisoryTranslations[a]
	if !ok {
		return string(a)
	}
	if text, ok := entry[l]; ok {
		return text
	}
	return string(a)
}
