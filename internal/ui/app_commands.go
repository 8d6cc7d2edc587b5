package ui

import (
	"context"
	"slices"

	"bommie/internal/bom"

	tea "github.com/charmbracelet/bubbletea"
)

// loadDocumentCmd returns a command that reads and parses path.
func loadDocumentCmd(ctx context.Context, store *bom.Store, path string) tea.Cmd {
	return func() tea.Msg {
		prints, err := store.Load(ctx, path)
		if err != nil {
			return DocumentLoadFailedMsg{Path: path, Err: err}
		}
		return DocumentLoadedMsg{Path: path, Prints: prints}
	}
}

// saveDocumentCmd returns a command that writes prints to path. The prints are
// copied up front so later edits cannot race with the write.
func saveDocumentCmd(ctx context.Context, store *bom.Store, path string, prints []bom.Print) tea.Cmd {
	snapshot := clonePrints(prints)
	return func() tea.Msg {
		if err := store.Save(ctx, path, snapshot); err != nil {
			return DocumentSaveFailedMsg{Path: path, Err: err}
		}
		return DocumentSavedMsg{Path: path}
	}
}

func clonePrints(prints []bom.Print) []bom.Print {
	out := make([]bom.Print, len(prints))
	for i, p := range prints {
		out[i] = bom.Print{Name: p.Name, Units: slices.Clone(p.Units)}
	}
	return out
}
