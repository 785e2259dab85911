// Package container builds navigable trees from chunked container files.
//
// # Overview
//
// The chunk package provides the parse engine; this package gives it a
// memory: a Profile describes one dialect of the family (byte order, group
// tags, padding), Scan drives the engine over a source and records every
// chunk as a Node, and the resulting Tree supports path lookup, traversal
// and statistics. Open ties it together with memory-mapped file access and
// profile detection.
//
// # Profiles
//
// A Profile is data, not code: the riff and iff packages register the two
// built-in dialects, and LoadProfile reads custom ones from YAML so
// proprietary formats can be explored without writing Go. Importing a format
// package is what makes its dialect detectable:
//
//	import (
//	    "github.com/joshuapare/chunkkit/container"
//	    _ "github.com/joshuapare/chunkkit/iff"
//	    _ "github.com/joshuapare/chunkkit/riff"
//	)
//
//	f, err := container.Open("movie.avi", container.OpenOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	node, err := f.Tree.Find("RIFF/LIST.INFO/IART")
//
// # Zero-Copy Design
//
// Scan records offsets, never payload copies. Payload access slices the
// mapped file directly; callers must not retain those slices past Close.
//
// # Thread Safety
//
// A File is safe for concurrent reads after Open returns. Scanning mutates
// the Parser and is single-goroutine, like every parse in this family.
package container
