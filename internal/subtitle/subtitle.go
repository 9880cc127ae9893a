package subtitle

import (
	"strings"
	"time"
)

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string // may carry <font color="..."> and <i> markup
}

// represents complete subtitle track
type Subtitle struct {
	Entries  []Entry
	Language string
	Format   string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// interface for writing subtitles
type Writer interface {
	Format(subtitle *Subtitle) string
	Write(subtitle *Subtitle, path string) error
}

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(name string) (Format, bool) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	switch format {
	case FormatSRT, FormatVTT, FormatASS:
		return format, true
	default:
		return "", false
	}
}
