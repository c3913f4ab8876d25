package i18n

import (
	"shetkarai/domain/lang"
)

// SoilTypeCount is the number of soil types the placeholder analyzer
// can report.
const SoilTypeCount = 4

var soilNames = map[lang.Language][]string{
	lang.English: {
		"Clay Soil",
		"Sandy Soil",
		"Loamy Soil",
		"Silty Soil",
	},
	lang.Hindi: {
		"चिकनी मिट्टी",
		"रेतीली मिट्टी",
		"दोमट मिट्टी",
		"गादयुक्त मिट्टी",
	},
}

var soilRecommendations = map[lang.Language][][]string{
	lang.English: {
		{
			"Add organic matter to improve drainage.",
			"Avoid overwatering as clay retains moisture well.",
			"Plant crops that thrive in clay soil like cabbage and broccoli.",
		},
		{
			"Add compost to improve water retention.",
			"Water frequently as sandy soil drains quickly.",
			"Plant root vegetables like carrots and potatoes.",
		},
		{
			"Maintain organic matter levels with regular compost additions.",
			"Most crops will grow well in this balanced soil type.",
			"Rotate crops to maintain soil health.",
		},
		{
			"Add organic matter to improve structure.",
			"Avoid walking on soil when wet to prevent compaction.",
			"Good for growing most vegetables and fruits.",
		},
	},
	lang.Hindi: {
		{
			"जल निकासी में सुधार के लिए जैविक पदार्थ जोड़ें।",
			"अधिक पानी देने से बचें क्योंकि मिट्टी नमी को अच्छी तरह से बनाए रखती है।",
			"पत्तागोभी और ब्रोकोली जैसी फसलें लगाएं जो चिकनी मिट्टी में अच्छी तरह से उगती हैं।",
		},
		{
			"पानी के धारण को बेहतर बनाने के लिए कम्पोस्ट जोड़ें।",
			"बार-बार पानी दें क्योंकि रेतीली मिट्टी जल्दी सूख जाती है।",
			"गाजर और आलू जैसी जड़ वाली सब्जियां लगाएं।",
		},
		{
			"नियमित कम्पोस्ट जोड़कर जैविक पदार्थ के स्तर को बनाए रखें।",
			"अधिकांश फसलें इस संतुलित मिट्टी के प्रकार में अच्छी तरह से उगेंगी।",
			"मिट्टी के स्वास्थ्य को बनाए रखने के लिए फसलों को घुमाएं।",
		},
		{
			"संरचना में सुधार के लिए जैविक पदार्थ जोड़ें।",
			"संघनन को रोकने के लिए गीली मिट्टी पर चलने से बचें।",
			"अधिकांश सब्जियों और फलों के लिए अच्छी है।",
		},
	},
}

// PHBand classifies a soil pH reading relative to the optimal range
// for most crops. The boundaries themselves count as optimal.
type PHBand string

const (
	PHLow     PHBand = "low"
	PHHigh    PHBand = "high"
	PHOptimal PHBand = "optimal"
)

var phRecommendations = map[lang.Language]map[PHBand]string{
	lang.English: {
		PHLow:     "Your soil pH is low. Consider adding lime to raise pH.",
		PHHigh:    "Your soil pH is high. Consider adding sulfur to lower pH.",
		PHOptimal: "Your soil pH is in the optimal range for most crops.",
	},
	lang.Hindi: {
		PHLow:     "आपकी मिट्टी का पीएच कम है। पीएच बढ़ाने के लिए चूना जोड़ने पर विचार करें।",
		PHHigh:    "आपकी मिट्टी का पीएच अधिक है। पीएच कम करने के लिए सल्फर जोड़ने पर विचार करें।",
		PHOptimal: "आपकी मिट्टी का पीएच अधिकांश फसलों के लिए इष्टतम सीमा में है।",
	},
}

// SoilName returns the translated name of a soil type.
func SoilName(soilType int, l lang.Language) string {
	return soilNames[l][soilType]
}

// SoilRecommendations returns the translated care list for a soil type.
// The returned slice is a copy.
func SoilRecommendations(soilType int, l lang.Language) []string {
	recs := soilRecommendations[l][soilType]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

// PHRecommendation returns the translated advisory for a pH band.
func PHRecommendation(band PHBand, l lang.Language) string {
	return phRecommendations[l][band]
}
