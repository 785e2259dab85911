package container

import (
	"fmt"

	"github.com/joshuapare/chunkkit/chunk"
)

// Detect sniffs the dialect of the source by peeking its leading tag. With
// no explicit candidates it considers every registered profile. The cursor
// is left where it was.
func Detect(p *chunk.Parser, profiles ...*Profile) (*Profile, error) {
	if len(profiles) == 0 {
		profiles = Profiles()
	}
	tag, err := p.PeekFourCC()
	if err != nil {
		return nil, err
	}
	for _, prof := range profiles {
		if prof.IsMagic(tag) {
			return prof, nil
		}
	}
	return nil, fmt.Errorf("no profile claims leading tag %q: %w", tag, ErrNotFound)
}
