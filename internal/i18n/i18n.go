// Package i18n holds the static translation tables for the application.
// English and Hindi are supported; every lookup falls back to English.
package i18n

import (
	"shetkarai/domain/lang"
)

// translations maps a semantic key to its per-language UI string.
var translations = map[string]map[lang.Language]string{
	// Language selection page
	"language_select_title": {
		lang.English: "Select Your Language",
		lang.Hindi:   "अपनी भाषा चुनें",
	},
	"language_select_subtitle": {
		lang.English: "Choose your preferred language to use ShetkarAI",
		lang.Hindi:   "ShetkarAI का उपयोग करने के लिए अपनी पसंदीदा भाषा चुनें",
	},
	"english": {
		lang.English: "English",
		lang.Hindi:   "अंग्रेज़ी",
	},
	"hindi": {
		lang.English: "Hindi",
		lang.Hindi:   "हिंदी",
	},
	"continue": {
		lang.English: "Continue",
		lang.Hindi:   "जारी रखें",
	},

	// Login/Register page
	"login_title": {
		lang.English: "Login to ShetkarAI",
		lang.Hindi:   "ShetkarAI में लॉगिन करें",
	},
	"register_title": {
		lang.English: "Register for ShetkarAI",
		lang.Hindi:   "ShetkarAI के लिए पंजीकरण करें",
	},
	"email": {
		lang.English: "Email",
		lang.Hindi:   "ईमेल",
	},
	"password": {
		lang.English: "Password",
		lang.Hindi:   "पासवर्ड",
	},
	"username": {
		lang.English: "Username",
		lang.Hindi:   "उपयोगकर्ता नाम",
	},
	"login_button": {
		lang.English: "Login",
		lang.Hindi:   "लॉगिन",
	},
	"register_button": {
		lang.English: "Register",
		lang.Hindi:   "पंजीकरण करें",
	},
	"no_account": {
		lang.English: "Don't have an account?",
		lang.Hindi:   "खाता नहीं है?",
	},
	"have_account": {
		lang.English: "Already have an account?",
		lang.Hindi:   "पहले से ही एक खाता है?",
	},
	"register_link": {
		lang.English: "Register here",
		lang.Hindi:   "यहां पंजीकरण करें",
	},
	"login_link": {
		lang.English: "Login here",
		lang.Hindi:   "यहां लॉगिन करें",
	},

	// Main application
	"app_title": {
		lang.English: "ShetkarAI - AI for Indian Farmers",
		lang.Hindi:   "ShetkarAI - भारतीय किसानों के लिए AI",
	},
	"welcome": {
		lang.English: "Welcome",
		lang.Hindi:   "स्वागत है",
	},
	"detect_disease": {
		lang.English: "Detect Plant Disease",
		lang.Hindi:   "पौधों के रोग का पता लगाएं",
	},
	"detect_disease_desc": {
		lang.English: "Upload a photo of your plant to identify diseases and get treatment recommendations.",
		lang.Hindi:   "रोगों की पहचान करने और उपचार सुझाव प्राप्त करने के लिए अपने पौधे की एक तस्वीर अपलोड करें।",
	},
	"analyze_soil": {
		lang.English: "Analyze Soil",
		lang.Hindi:   "मिट्टी का विश्लेषण करें",
	},
	"analyze_soil_desc": {
		lang.English: "Upload a photo of your soil to determine its type and properties for better crop selection.",
		lang.Hindi:   "बेहतर फसल चयन के लिए अपनी मिट्टी के प्रकार और गुणों का निर्धारण करने के लिए अपनी मिट्टी की एक तस्वीर अपलोड करें।",
	},
	"weather": {
		lang.English: "Get Weather Recommendations",
		lang.Hindi:   "मौसम की सिफारिशें प्राप्त करें",
	},
	"weather_desc": {
		lang.English: "Get weather forecasts and farming recommendations based on your location.",
		lang.Hindi:   "अपने स्थान के आधार पर मौसम की भविष्यवाणी और कृषि सिफारिशें प्राप्त करें।",
	},
	"logout": {
		lang.English: "Logout",
		lang.Hindi:   "लॉग आउट",
	},

	// Error messages
	"error_login": {
		lang.English: "Login failed. Please check your email and password.",
		lang.Hindi:   "लॉगिन विफल। कृपया अपना ईमेल और पासवर्ड जांचें।",
	},
	"error_register": {
		lang.English: "Registration failed. Please try again.",
		lang.Hindi:   "पंजीकरण विफल। कृपया पुन: प्रयास करें।",
	},
	"error_email_exists": {
		lang.English: "Email already exists. Please login or use a different email.",
		lang.Hindi:   "ईमेल पहले से मौजूद है। कृपया लॉगिन करें या अलग ईमेल का उपयोग करें।",
	},
}

// Text returns the translated string for key in the given language.
// A key missing from the table is returned verbatim; a missing language
// entry falls back to English.
func Text(key string, l lang.Language) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if text, ok := entry[l]; ok {
		return text
	}
	return entry[lang.English]
}

// Keys returns every key in the UI translation table.
func Keys() []string {
	keys := make([]string, 0, len(translations))
	for k := range translations {
		keys = append(keys, k)
	}
	return keys
}
