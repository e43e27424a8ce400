package tui

import "strings"

// wordWrap wraps text to fit within width while preserving paragraph
// breaks. Words longer than the width are broken into chunks.
func wordWrap(text string, width int) string {
	if width <= 0 {
		width = 80
	}

	var result strings.Builder
	firstPara := true
	for _, para := range strings.Split(text, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if !firstPara {
			result.WriteString("\n")
		}
		firstPara = false

		current := ""
		currentLen := 0
		for _, word := range strings.Fields(para) {
			// Chunk by runes so multibyte text is never split mid-sequence.
			runes := []rune(word)
			for len(runes) > width {
				if current != "" {
					result.WriteString(current)
					result.WriteString("\n")
					current = ""
					currentLen = 0
				}
				result.WriteString(string(runes[:width]))
				result.WriteString("\n")
				runes = runes[width:]
			}
			wordLen := len(runes)
			switch {
			case current == "":
				current = string(runes)
				currentLen = wordLen
			case currentLen+1+wordLen > width:
				result.WriteString(current)
				result.WriteString("\n")
				current = string(runes)
				currentLen = wordLen
			default:
				current += " " + string(runes)
				currentLen += 1 + wordLen
			}
		}
		if current != "" {
			result.WriteString(current)
		}
	}
	return result.String()
}
