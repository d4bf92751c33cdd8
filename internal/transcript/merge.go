package transcript

import "strings"

// Merge collapses consecutive utterances from the same speaker into segments,
// preserving arrival order. An empty input yields an empty, non-nil slice.
func Merge(utterances []Utterance) []SpeakerSegment {
	segments := make([]SpeakerSegment, 0, len(utterances))
	if len(utterances) == 0 {
		return segments
	}

	var (
		current string
		text    strings.Builder
		first   Utterance
		last    Utterance
	)

	flush := func() {
		segments = append(segments, SpeakerSegment{
			Speaker: current,
			Text:    strings.TrimSpace(text.String()),
			Start:   segmentStart(first, segments),
			End:     last.End,
		})
		text.Reset()
	}

	for i, u := range utterances {
		if i > 0 && u.Speaker == current {
			text.WriteByte(' ')
			text.WriteString(u.Text)
			last = u
			continue
		}
		if i > 0 {
			flush()
		}
		current = u.Speaker
		text.WriteString(u.Text)
		first, last = u, u
	}
	flush()

	return segments
}

// segmentStart prefers the utterance's own timing, then the end of the
// previous segment, then zero.
func segmentStart(first Utterance, done []SpeakerSegment) int64 {
	if first.Start != nil {
		return *first.Start
	}
	if n := len(done); n > 0 && done[n-1].End != nil {
		return *done[n-1].End
	}
	return 0
}
