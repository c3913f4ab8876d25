// Package lang defines the closed set of languages the application can serve.
package lang

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Supported returns all languages the application can serve.
func Supported() []Language {
	return []Language{English, Hindi}
}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	switch Language(code) {
	case English, Hindi:
		return true
	}
	return false
}

// Normalize maps an arbitrary language code onto the supported set.
// Unknown or empty codes resolve to English.
func Normalize(code string) Language {
	if IsSupported(code) {
		return Language(code)
	}
	return English
}

func (l Language) String() string {
	return string(l)
}
