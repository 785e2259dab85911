package main

import (
	"github.com/joshuapare/chunkkit/container"
	"github.com/joshuapare/chunkkit/iff"
	"github.com/joshuapare/chunkkit/riff"
)

// summarize returns a one-line interpretation of well-known chunk payloads,
// or "" when the tag has no registered decoding. Decode failures are
// swallowed: a truncated fmt chunk still shows its hex.
func summarize(f *container.File, n *container.Node) string {
	if n.Group {
		return ""
	}
	payload, ok := f.Payload(n)
	if !ok {
		return ""
	}

	switch f.Profile().Name {
	case "riff":
		if n.ID == riff.TagFmt {
			if wf, err := riff.DecodeWaveFormat(payload); err == nil {
				return wf.String()
			}
			return ""
		}
		// INFO metadata chunks (IART, ICMT, ISFT, ...) decode as text.
		if name := riff.InfoName(n.ID); name != n.ID.String() {
			if s, err := riff.DecodeInfoString(payload); err == nil && s != "" {
				return name + ": " + s
			}
		}

	case "iff":
		if n.ID == iff.TagCOMM {
			if c, err := iff.DecodeCommon(payload); err == nil {
				return c.String()
			}
		}
	}
	return ""
}
