package command

// Selectors interpreted by the dispatch core itself. Everything else is
// delivered to widgets as a targeted command event.
const (
	// ShowOpenPanel opens a synchronous file-open dialog. Payload:
	// shell.FileDialogOptions (optional).
	ShowOpenPanel Selector = "show-open-panel"
	// ShowSavePanel opens a synchronous save dialog. Payload:
	// shell.FileDialogOptions (optional).
	ShowSavePanel Selector = "show-save-panel"
	// OpenFile is delivered after an open dialog returns. Payload: shell.FileInfo.
	OpenFile Selector = "open-file"
	// SaveFile is delivered after a save dialog returns. Payload: shell.FileInfo.
	SaveFile Selector = "save-file"
	// NewWindow creates a window. Payload: *window.Desc[T].
	NewWindow Selector = "new-window"
	// CloseWindow asks the platform to close a window. Payload: ids.WindowID
	// (optional, defaults to the command's window).
	CloseWindow Selector = "close-window"
	// ShowWindow brings a window to the front. Payload: ids.WindowID.
	ShowWindow      Selector = "show-window"
	QuitApp         Selector = "quit-app"
	HideApplication Selector = "hide-application"
	HideOthers      Selector = "hide-others"
	// Paste synthesizes a paste event from the clipboard.
	Paste Selector = "paste"
	Copy  Selector = "copy"
	Cut   Selector = "cut"
	// SetMenu replaces a window's menu. Payload: menu.Desc.
	SetMenu Selector = "set-menu"
	// ShowContextMenu pops up a context menu. Payload: menu.ContextMenu.
	ShowContextMenu Selector = "show-context-menu"
)
