package extract

import "unicode"

// Language tags reported in a Record.
const (
	LanguageKannada = "Kannada"
	LanguageEnglish = "English"
)

var kannadaBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0C80, Hi: 0x0CFF, Stride: 1}},
}

// IsKannada reports whether any rune of text falls in the Kannada block.
func IsKannada(text string) bool {
	for _, r := range text {
		if unicode.Is(kannadaBlock, r) {
			return true
		}
	}
	return false
}

// DetectLanguage returns LanguageKannada or LanguageEnglish.
func DetectLanguage(text string) string {
	if IsKannada(text) {
		return LanguageKannada
	}
	return LanguageEnglish
}
