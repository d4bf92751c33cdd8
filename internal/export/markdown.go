package export

import (
	"fmt"
	"strings"
)

// Markdown renders the document as a title, a metadata list, the summary and
// the speaker-attributed transcript.
func Markdown(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	if !doc.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Date:** %s\n", doc.CreatedAt.Format("2006-01-02 15:04"))
	}
	if doc.Confidence != nil {
		fmt.Fprintf(&b, "- **Confidence:** %.0f%%\n", *doc.Confidence*100)
	}
	if n := speakerCount(doc); n > 0 {
		fmt.Fprintf(&b, "- **Speakers:** %d\n", n)
	}
	b.WriteString("\n")

	if s := strings.TrimSpace(doc.Summary); s != "" {
		b.WriteString("## Summary\n\n")
		b.WriteString(s)
		b.WriteString("\n\n")
	}

	b.WriteString("## Transcript\n\n")
	if len(doc.Segments) == 0 {
		b.WriteString(strings.TrimSpace(doc.Text))
		b.WriteString("\n")
		return b.String()
	}
	for _, seg := range doc.Segments {
		fmt.Fprintf(&b, "**Speaker %s** (%s): %s\n\n", seg.Speaker, timestamp(seg.Start), seg.Text)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func speakerCount(doc Document) int {
	seen := make(map[string]struct{})
	for _, seg := range doc.Segments {
		seen[seg.Speaker] = struct{}{}
	}
	return len(seen)
}

// timestamp formats a millisecond offset as mm:ss, or h:mm:ss past an hour.
func timestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
