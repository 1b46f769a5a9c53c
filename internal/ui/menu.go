package ui

import (
	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/menu"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// Selectors understood by Root.
const (
	Increment   command.Selector = "counter-increment"
	Decrement   command.Selector = "counter-decrement"
	Reset       command.Selector = "counter-reset"
	SpawnWindow command.Selector = "spawn-window"
)

var (
	openOptions = shell.FileDialogOptions{Title: "Open file"}
	saveOptions = shell.FileDialogOptions{Title: "Save as", DefaultName: "untitled.txt"}
)

// MainMenu is installed on every window.
func MainMenu() menu.Desc {
	return menu.New("popup-shell",
		item("New window", command.New(SpawnWindow, nil), "n"),
		item("Close window", command.New(command.CloseWindow, nil), "w"),
		menu.Separator(),
		item("Open…", command.New(command.ShowOpenPanel, openOptions), "o"),
		item("Save as…", command.New(command.ShowSavePanel, saveOptions), "s"),
		item("Paste", command.New(command.Paste, nil), "ctrl+v"),
		menu.Separator(),
		item("Increment", command.New(Increment, nil), "+"),
		item("Decrement", command.New(Decrement, nil), "-"),
		menu.Entry("Reset counter", command.New(Reset, nil)),
		menu.Separator(),
		item("Quit", command.New(command.QuitApp, nil), "q"),
	)
}

// CounterMenu is the context menu opened with the m key.
func CounterMenu(counter int) menu.Desc {
	return menu.New("counter",
		menu.Entry("Increment", command.New(Increment, nil)),
		menu.Entry("Decrement", command.New(Decrement, nil)),
		menu.Item{Label: "Reset counter", Command: command.New(Reset, nil), Disabled: counter == 0},
	)
}

func item(label string, cmd command.Command, hotkey string) menu.Item {
	return menu.Item{Label: label, Command: cmd, Hotkey: hotkey}
}
