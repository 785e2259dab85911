package hexview

// Messages the hex pane emits for coordination with the main Model.

// CopyHexRequestedMsg is emitted when the user requests to copy the payload
// as a hex string
type CopyHexRequestedMsg struct {
	Bytes   int
	Success bool
	Err     error
}
