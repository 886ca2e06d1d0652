package extract

import "strings"

// DedupWords drops repeated whitespace-separated words, comparing them
// case-insensitively. The first spelling of every word is kept in its
// original position.
func DedupWords(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		key := strings.ToLower(w)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// dedupStrings keeps the first occurrence of every string.
func dedupStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
