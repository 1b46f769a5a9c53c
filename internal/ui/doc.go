// Package ui contains the demo widgets run on top of the dispatch core.
//
// Every window shows the same Model through a Root widget. Keys and menu
// selections become commands; the core routes them back to the widget tree
// or handles them itself (new window, dialogs, paste, quit). A Delegate sees
// every event first, keeps the list of open windows in the Model and
// swallows one configurable key.
//
// External events arrive as backend.FileChanged commands and end up in the
// Model's LastExternal field, so file changes show up in every window on the
// next update pass.
package ui
