package ui

import "bommie/internal/bom"

// NewDocumentMsg replaces the document with an empty one (SPC f n).
type NewDocumentMsg struct{}

// ShowOpenMsg shows the file picker (SPC f o).
type ShowOpenMsg struct{}

// ShowSaveMsg shows the save prompt (SPC f s).
type ShowSaveMsg struct{}

// DismissErrorMsg clears the sidebar error message (SPC e or Esc).
type DismissErrorMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// OpenFileMsg is sent when the user picked a file to open.
type OpenFileMsg struct {
	Path string
}

// SaveFileMsg is sent when the user confirmed a path to save to.
type SaveFileMsg struct {
	Path string
}

// DocumentLoadedMsg carries a successfully parsed document.
type DocumentLoadedMsg struct {
	Path   string
	Prints []bom.Print
}

// DocumentLoadFailedMsg reports a read or parse failure.
type DocumentLoadFailedMsg struct {
	Path string
	Err  error
}

// DocumentSavedMsg reports a successful save.
type DocumentSavedMsg struct {
	Path string
}

// DocumentSaveFailedMsg reports a write failure.
type DocumentSaveFailedMsg struct {
	Path string
	Err  error
}
