package i18n

import (
	"shetkarai/domain/lang"
)

// DiseaseClassCount is the number of disease classes the placeholder
// classifier can report.
const DiseaseClassCount = 5

var diseaseNames = map[lang.Language][]string{
	lang.English: {
		"Healthy",
		"Early Blight",
		"Late Blight",
		"Bacterial Spot",
		"Target Spot",
	},
	lang.Hindi: {
		"स्वस्थ",
		"अर्ली ब्लाइट",
		"लेट ब्लाइट",
		"बैक्टीरियल स्पॉट",
		"टारगेट स्पॉट",
	},
}

var diseaseRecommendations = map[lang.Language][][]string{
	lang.English: {
		{"Plant is healthy, no treatment needed."},
		{"Remove infected leaves.", "Apply copper-based fungicide.", "Ensure proper spacing for air circulation."},
		{"Remove infected plants to prevent spread.", "Apply fungicide with chlorothalonil.", "Avoid overhead irrigation."},
		{"Apply copper-based bactericide.", "Rotate crops.", "Avoid working with wet plants."},
		{"Remove infected leaves.", "Apply fungicide.", "Maintain proper plant spacing."},
	},
	lang.Hindi: {
		{"पौधा स्वस्थ है, कोई उपचार की आवश्यकता नहीं है।"},
		{"संक्रमित पत्तियों को हटा दें।", "कॉपर-आधारित फफूंदनाशक लगाएं।", "हवा के संचार के लिए उचित स्पेसिंग सुनिश्चित करें।"},
		{"प्रसार को रोकने के लिए संक्रमित पौधों को हटा दें।", "क्लोरोथालोनिल वाले फफूंदनाशक लगाएं।", "ऊपरी सिंचाई से बचें।"},
		{"कॉपर-आधारित बैक्टीरियासाइड लगाएं।", "फसलों का रोटेशन करें।", "गीले पौधों के साथ काम करने से बचें।"},
		{"संक्रमित पत्तियों को हटा दें।", "फफूंदनाशक लगाएं।", "उचित पौधों की स्पेसिंग बनाए रखें।"},
	},
}

// DiseaseName returns the translated name of a disease class.
func DiseaseName(class int, l lang.Language) string {
	return diseaseNames[l][class]
}

// DiseaseRecommendations returns the translated treatment list for a
// disease class. The returned slice is a copy.
func DiseaseRecommendations(class int, l lang.Language) []string {
	recs := diseaseRecommendations[l][class]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
