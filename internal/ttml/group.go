package ttml

import (
	"regexp"
	"time"

	"github.com/mgpai22/ttml2srt/internal/subtitle"
)

// the last real group is closed this long after the final boundary
const sentinelGap = 24 * time.Hour

var blankLinesRegex = regexp.MustCompile(`\n{3,}`)

// Group is a run of boundaries that render identical text, starting at At.
type Group struct {
	At   time.Duration
	Text string
}

// GroupSnapshots renders a snapshot at every boundary and merges runs of
// identical content. A trailing empty group closes the last interval.
// A document without boundaries yields no groups.
func GroupSnapshots(r *Renderer, boundaries []time.Duration) []Group {
	if len(boundaries) == 0 {
		return nil
	}

	groups := make([]Group, 0, len(boundaries)+1)
	for _, t := range boundaries {
		text := r.Snapshot(t)
		if len(groups) > 0 && groups[len(groups)-1].Text == text {
			continue
		}
		groups = append(groups, Group{At: t, Text: text})
	}

	return append(groups, Group{
		At: boundaries[len(boundaries)-1] + sentinelGap,
	})
}

// Cues turns groups into numbered entries. Empty groups produce nothing and
// do not consume a number.
func Cues(groups []Group) []subtitle.Entry {
	var entries []subtitle.Entry
	for i := 0; i+1 < len(groups); i++ {
		if groups[i].Text == "" {
			continue
		}
		entries = append(entries, subtitle.Entry{
			Index:     len(entries) + 1,
			StartTime: groups[i].At,
			EndTime:   groups[i+1].At,
			Text:      groups[i].Text,
		})
	}
	return entries
}
