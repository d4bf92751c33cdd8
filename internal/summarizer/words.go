package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minWordLength = 3

var stopWords = toSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"from", "about", "into", "through", "during", "before", "after", "above", "below", "up",
	"down", "out", "off", "over", "under", "again", "further", "then", "once", "here", "there",
	"when", "where", "why", "how", "all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"can", "will", "just", "should", "could", "would", "may", "might", "must", "shall",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// tokenize lower-cases text, strips everything but letters, digits,
// underscores and whitespace, and splits on whitespace.
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', unicode.IsSpace(r):
			return unicode.ToLower(r)
		default:
			return -1
		}
	}, text)
	return strings.Fields(cleaned)
}

// contentTokens drops tokens shorter than minWordLength.
func contentTokens(text string) []string {
	tokens := tokenize(text)
	out := tokens[:0]
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) >= minWordLength {
			out = append(out, tok)
		}
	}
	return out
}

// WordFrequencies maps each content word of text to its count divided by the
// highest count, so the most frequent word scores exactly 1.0. Stop words and
// words shorter than three characters are left out.
func WordFrequencies(text string) map[string]float64 {
	counts := make(map[string]int)
	for _, tok := range contentTokens(text) {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	freq := make(map[string]float64, len(counts))
	for w, c := range counts {
		freq[w] = float64(c) / float64(maxCount)
	}
	return freq
}
