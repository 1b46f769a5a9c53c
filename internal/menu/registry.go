package menu

import (
	"sync/atomic"

	"github.com/atomicstack/popup-shell/internal/command"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// Platform menu ids are unique for the process so a stale selection from a
// replaced menu can never resolve to a command of the new one.
var nextID atomic.Uint32

// Registry maps the numeric ids of a built platform menu back to commands.
type Registry struct {
	commands map[uint32]command.Command
}

// Build assigns platform ids to every selectable item and returns the
// platform menu together with the registry resolving those ids.
func (d Desc) Build() (*shell.Menu, *Registry) {
	platform := &shell.Menu{Title: d.Title, Entries: make([]shell.MenuEntry, 0, len(d.Items))}
	reg := &Registry{commands: make(map[uint32]command.Command, len(d.Items))}
	for _, item := range d.Items {
		if item.Separator {
			platform.Entries = append(platform.Entries, shell.MenuEntry{Separator: true})
			continue
		}
		id := nextID.Add(1)
		platform.Entries = append(platform.Entries, shell.MenuEntry{
			ID:       id,
			Label:    item.Label,
			Hotkey:   item.Hotkey,
			Disabled: item.Disabled,
		})
		if !item.Disabled {
			reg.commands[id] = item.Command
		}
	}
	return platform, reg
}

// Command resolves a platform menu id.
func (r *Registry) Command(id uint32) (command.Command, bool) {
	if r == nil {
		return command.Command{}, false
	}
	cmd, ok := r.commands[id]
	return cmd, ok
}

// Len returns the number of selectable entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}
