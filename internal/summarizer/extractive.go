package summarizer

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

const maxSummarySentences = 3

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// splitSentences splits on runs of sentence punctuation and drops empty pieces.
func splitSentences(text string) []string {
	var sentences []string
	for _, piece := range sentenceBoundary.Split(text, -1) {
		if s := strings.TrimSpace(piece); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Extractive picks the highest scoring sentences of text and returns them in
// their original order. Texts of three sentences or fewer come back unchanged.
// The result depends only on text.
func Extractive(text string) string {
	sentences := splitSentences(text)
	if len(sentences) <= maxSummarySentences {
		return text
	}

	freq := WordFrequencies(text)
	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = scoredSentence{
			text:  s,
			index: i,
			score: scoreSentence(s, freq, i, len(sentences)),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	selected := scored[:min(maxSummarySentences, len(scored))]
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].index < selected[j].index
	})

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.text
	}
	return strings.Join(parts, ". ") + "."
}

type extractiveSource struct{}

// NewExtractive returns the local Source; it never fails.
func NewExtractive() Source {
	return extractiveSource{}
}

func (extractiveSource) Name() string { return SourceExtractive }

func (extractiveSource) Summarize(_ context.Context, req Request) (string, error) {
	return Extractive(req.Text), nil
}
