package chunktree

// Messages the chunk tree emits for coordination with the main Model.

// CopyPathRequestedMsg is emitted when the user requests to copy the current path
type CopyPathRequestedMsg struct {
	Path    string
	Success bool
	Err     error
}

// ChunkSelectedMsg is emitted when the user presses Enter on a leaf chunk
type ChunkSelectedMsg struct {
	Item *Item
}
