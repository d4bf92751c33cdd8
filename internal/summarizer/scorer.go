package summarizer

import "strings"

const (
	firstSentenceBonus = 0.3
	lastSentenceBonus  = 0.2
	earlyBonus         = 0.1
	earlyFraction      = 0.2

	goodLengthMin   = 8
	goodLengthMax   = 30
	goodLengthBonus = 0.1
	shortLength     = 5
	shortPenalty    = -0.2

	keywordBonus = 0.15
)

var signalWords = []string{
	"important", "key", "main", "primary", "summary", "conclusion", "decision",
	"action", "result", "therefore", "however", "additionally", "furthermore", "moreover",
}

// scoredSentence lives only for the duration of one summarize call.
type scoredSentence struct {
	text  string
	index int
	score float64
}

// scoreSentence rates the sentence at position of total using word
// importance, position, length and signal words. The score may be negative.
func scoreSentence(sentence string, freq map[string]float64, position, total int) float64 {
	tokens := contentTokens(sentence)

	var word float64
	if len(tokens) > 0 {
		var sum float64
		for _, tok := range tokens {
			sum += freq[tok]
		}
		word = sum / float64(len(tokens))
	}

	var pos float64
	if position == 0 {
		pos += firstSentenceBonus
	}
	if position == total-1 {
		pos += lastSentenceBonus
	}
	if float64(position) < earlyFraction*float64(total) {
		pos += earlyBonus
	}

	var length float64
	switch n := len(tokens); {
	case n >= goodLengthMin && n <= goodLengthMax:
		length = goodLengthBonus
	case n < shortLength:
		length = shortPenalty
	}

	var keyword float64
	lower := strings.ToLower(sentence)
	for _, kw := range signalWords {
		if strings.Contains(lower, kw) {
			keyword += keywordBonus
		}
	}

	return word + pos + length + keyword
}
