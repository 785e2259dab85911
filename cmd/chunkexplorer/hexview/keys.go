package hexview

import "github.com/charmbracelet/bubbles/key"

// Keys defines keyboard shortcuts for the hex pane
type Keys struct {
	// Jumps; line scrolling is handled by the viewport's own bindings
	Home key.Binding
	End  key.Binding

	// Clipboard
	CopyHex key.Binding
}
