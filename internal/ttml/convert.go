package ttml

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mgpai22/ttml2srt/internal/subtitle"
)

// Converter turns timed text documents into cue lists. It keeps no state
// between calls and may be shared by goroutines.
type Converter struct {
	log *zap.Logger
}

func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{log: log}
}

// Convert runs the whole pipeline on a raw document.
func (c *Converter) Convert(src []byte) (*subtitle.Subtitle, error) {
	doc, err := Parse(src, c.log)
	if err != nil {
		return nil, err
	}

	timeline, err := Resolve(doc)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve timing: %w", err)
	}

	boundaries := timeline.Boundaries()
	groups := GroupSnapshots(NewRenderer(doc, timeline), boundaries)
	entries := Cues(groups)

	c.log.Debug("Document converted",
		zap.Int("boundaries", len(boundaries)),
		zap.Int("groups", len(groups)),
		zap.Int("cues", len(entries)),
	)

	return &subtitle.Subtitle{
		Entries: entries,
		Format:  string(subtitle.FormatSRT),
	}, nil
}

// ConvertString converts document text into SubRip text.
func (c *Converter) ConvertString(src string) (string, error) {
	sub, err := c.Convert([]byte(src))
	if err != nil {
		return "", err
	}
	return (&subtitle.SRTWriter{}).Format(sub), nil
}
