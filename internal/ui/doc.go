// Package ui is the Bubble Tea front end of the units editor.
//
// Layout:
//   - SidebarView: the print list, its add-row input and the error message
//   - UnitsView: the units of the selected print, editable in place, plus an add form
//   - Overlays: the Open file picker and the Save path prompt
//
// Views read and mutate the shared editor.State directly; the next render
// reflects the change. File I/O runs in tea.Cmds that report back with
// Document* messages (see app_messages.go).
package ui
