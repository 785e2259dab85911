// Package chunk implements a low-level engine for parsing hierarchical,
// length-prefixed binary container formats (the IFF/RIFF family and its
// relatives: WAV, AVI, WebP, AIFF, ILBM).
//
// # Overview
//
// Formats in this family share one shape: a stream of chunks, each a small
// header (a four-byte tag plus a declared payload size) followed by that many
// payload bytes. Some chunks are groups whose payload is itself a sequence of
// chunks, so a file is a tree. This package provides the cursor, the typed
// readers, and the parse loop; it knows nothing about any concrete format.
// Format specifics (byte order of the size field, which tags open groups,
// padding rules) live with the caller - see the riff, iff and container
// packages for ready-made dialects.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Parser: a cursor over an io.ReadSeeker with a nesting-depth counter
//   - FourCC: a four-byte chunk tag
//   - HeaderFunc / BodyFunc: the caller-supplied decode and consume hooks
//   - Error / ErrKind: the typed error taxonomy shared by all layers
//
// # Parse Model
//
// Parse drives the loop over a whole source; ParseRegion drives it over a
// byte-bounded sub-region (a group payload). For every chunk the loop calls
// the HeaderFunc, then the BodyFunc, then verifies that the cursor landed
// exactly where the declared size says it must. A BodyFunc that recurses
// with ParseRegion produces the tree traversal:
//
//	var body chunk.BodyFunc[riff.Header]
//	body = func(p *chunk.Parser, h *riff.Header) (int64, error) {
//	    if h.ID == riff.TagLIST {
//	        if _, err := p.ReadFourCC(); err != nil { // form type
//	            return 0, err
//	        }
//	        return h.Size, chunk.ParseRegion(p, riff.DecodeHeader, body, h.Size-4)
//	    }
//	    _, err := p.Skip(h.Size)
//	    return h.Size, err
//	}
//	err := chunk.Parse(p, riff.DecodeHeader, body)
//
// The engine treats declared sizes as untrusted input: additions are
// overflow-checked, and any disagreement between the cursor and a declared
// size fails the parse with ErrKindParse rather than being papered over.
//
// # Thread Safety
//
// A Parser owns its source exclusively and is not safe for concurrent use.
// Run independent parses on independent Parser instances.
package chunk
