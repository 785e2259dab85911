package riff

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/chunkkit/chunk"
)

// infoNames maps LIST/INFO tags to display names. The set follows the RIFF
// metadata registry; unlisted tags display as their raw four characters.
var infoNames = map[chunk.FourCC]string{
	chunk.MakeFourCC("IARL"): "Archival Location",
	chunk.MakeFourCC("IART"): "Artist",
	chunk.MakeFourCC("ICMS"): "Commissioned",
	chunk.MakeFourCC("ICMT"): "Comment",
	chunk.MakeFourCC("ICOP"): "Copyright",
	chunk.MakeFourCC("ICRD"): "Creation Date",
	chunk.MakeFourCC("IENG"): "Engineer",
	chunk.MakeFourCC("IGNR"): "Genre",
	chunk.MakeFourCC("IKEY"): "Keywords",
	chunk.MakeFourCC("INAM"): "Title",
	chunk.MakeFourCC("IPRD"): "Product",
	chunk.MakeFourCC("ISBJ"): "Subject",
	chunk.MakeFourCC("ISFT"): "Software",
	chunk.MakeFourCC("ISRC"): "Source",
	chunk.MakeFourCC("ITCH"): "Technician",
}

// InfoName returns the display name of a LIST/INFO tag, or its raw text
// when the tag is not in the registry.
func InfoName(id chunk.FourCC) string {
	if name, ok := infoNames[id]; ok {
		return name
	}
	return id.String()
}

// DecodeInfoString decodes a LIST/INFO value to UTF-8. INFO values are
// NUL-terminated Windows-1252 in the wild regardless of what the format
// documents wished for.
func DecodeInfoString(payload []byte) (string, error) {
	// Strip the terminator and any padding NULs after it.
	end := len(payload)
	for end > 0 && payload[end-1] == 0 {
		end--
	}
	data := payload[:end]

	// Fast path: ASCII doesn't need decoding (same in Windows-1252 and UTF-8)
	if isASCII(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode INFO value: %w", err)
	}
	return string(decoded), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
