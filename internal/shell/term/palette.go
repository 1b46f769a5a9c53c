package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/popup-shell/internal/format/table"
	"github.com/atomicstack/popup-shell/internal/shell"
	"github.com/atomicstack/popup-shell/internal/theme"
)

const paletteRows = 8

// palette is the terminal stand-in for menus: a filter field above the
// selectable entries of one menu.
type palette struct {
	window *Window
	title  string
	at     shell.Point
	full   []shell.MenuEntry
	items  []shell.MenuEntry
	cursor int
	offset int
	input  textinput.Model
}

func newPalette(w *Window, menu *shell.Menu, at shell.Point, styles *theme.Styles) *palette {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "filter"
	in.PromptStyle = *styles.FilterPrompt
	in.TextStyle = *styles.Filter
	in.PlaceholderStyle = *styles.FilterPlaceholder
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()

	p := &palette{window: w, title: menu.Title, at: at, input: in}
	for _, entry := range menu.Entries {
		if entry.Separator || entry.Disabled {
			continue
		}
		p.full = append(p.full, entry)
	}
	p.items = append([]shell.MenuEntry(nil), p.full...)
	return p
}

func (s *Shell) openPalette(w *Window, menu *shell.Menu, at shell.Point) {
	s.palette = newPalette(w, menu, at, s.styles)
	s.palette.resize(s.width)
	w.dirty = true
}

func (s *Shell) handlePaletteKey(key tea.KeyMsg) {
	p := s.palette
	switch key.String() {
	case "esc", "ctrl+c", "ctrl+p":
		s.palette = nil
	case "up", "ctrl+k":
		p.move(-1)
	case "down", "ctrl+j":
		p.move(1)
	case "enter":
		entry, ok := p.selected()
		s.palette = nil
		if ok && !p.window.destroyed {
			p.window.handler.Command(entry.ID, s.ctx(p.window))
		}
	default:
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(key)
		if cmd != nil {
			s.cmds = append(s.cmds, cmd)
		}
		p.setQuery(p.input.Value())
	}
	p.window.dirty = true
}

func (p *palette) resize(width int) {
	if width > 4 {
		p.input.Width = width - 4 - len(p.input.Prompt)
	}
}

func (p *palette) move(delta int) {
	if len(p.items) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.items)) % len(p.items)
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+paletteRows {
		p.offset = p.cursor - paletteRows + 1
	}
}

func (p *palette) selected() (shell.MenuEntry, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return shell.MenuEntry{}, false
	}
	return p.items[p.cursor], true
}

// setQuery filters the entries and puts the cursor on the best match.
func (p *palette) setQuery(query string) {
	p.items = filterEntries(p.full, query)
	p.cursor = bestMatchIndex(p.items, query)
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.offset = 0
	if p.cursor >= paletteRows {
		p.offset = p.cursor - paletteRows + 1
	}
}

func (p *palette) view(styles *theme.Styles, width int) []string {
	lines := []string{styles.Header.Render(p.title), p.input.View()}
	if len(p.items) == 0 {
		return append(lines, styles.Info.Render("no matches"))
	}
	end := p.offset + paletteRows
	if end > len(p.items) {
		end = len(p.items)
	}
	rows := make([][]string, 0, end-p.offset)
	for _, entry := range p.items[p.offset:end] {
		rows = append(rows, []string{entry.Label, styles.Hotkey.Render(entry.Hotkey)})
	}
	for i, row := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		if p.offset+i == p.cursor {
			lines = append(lines, styles.SelectedItem.Render("▌ "+row))
			continue
		}
		lines = append(lines, styles.Item.Render("  "+row))
	}
	// context menus open near where they were requested
	if indent := p.at.X; indent > 0 {
		if indent > width/2 {
			indent = width / 2
		}
		pad := strings.Repeat(" ", indent)
		for i := range lines {
			lines[i] = pad + lines[i]
		}
	}
	return lines
}

// filterEntries keeps the entries whose label fuzzy-matches query, in menu
// order. When nothing fuzzy-matches a plain substring match is tried.
func filterEntries(entries []shell.MenuEntry, query string) []shell.MenuEntry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]shell.MenuEntry(nil), entries...)
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]shell.MenuEntry, 0, len(matches))
		for idx, entry := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, entry)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]shell.MenuEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// bestMatchIndex prefers exact, then prefix, then substring matches, then
// the closest fuzzy rank.
func bestMatchIndex(entries []shell.MenuEntry, query string) int {
	if len(entries) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, entry := range entries {
		if strings.EqualFold(entry.Label, trimmed) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.HasPrefix(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	for i, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
