package term

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atomicstack/popup-shell/internal/logging"
	"github.com/atomicstack/popup-shell/internal/shell"
)

// dialog runs a modal file dialog. The event loop is blocked while it runs;
// the terminal is handed to the chooser and taken back afterwards.
func (s *Shell) dialog(save bool, opts shell.FileDialogOptions) (shell.FileInfo, bool) {
	if s.opts.Dialog != nil {
		return fileInfo(s.opts.Dialog(save, opts))
	}

	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		if err := p.ReleaseTerminal(); err != nil {
			logging.Errorf("release terminal: %v", err)
			return shell.FileInfo{}, false
		}
		defer func() {
			if err := p.RestoreTerminal(); err != nil {
				logging.Errorf("restore terminal: %v", err)
			}
			if front := s.Front(); front != nil {
				front.dirty = true
			}
		}()
	}

	path, err := runChooser(s.opts.Chooser, save, opts)
	if errors.Is(err, ErrNoChooser) {
		path, err = promptPath(os.Stdin, os.Stderr, save, opts)
	}
	if err != nil {
		logging.Errorf("file dialog: %v", err)
		return shell.FileInfo{}, false
	}
	return fileInfo(path, true)
}

func fileInfo(path string, ok bool) (shell.FileInfo, bool) {
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return shell.FileInfo{}, false
	}
	return shell.FileInfo{Path: path}, true
}

// runChooser runs the chooser command through sh with the dialog options in
// its environment and returns the first line it prints.
func runChooser(command string, save bool, opts shell.FileDialogOptions) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", ErrNoChooser
	}
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Env = append(os.Environ(), dialogEnv(save, opts)...)
	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			// choosers exit non-zero on cancel
			return "", nil
		}
		return "", fmt.Errorf("run chooser %q: %w", command, err)
	}
	line, _, _ := strings.Cut(out.String(), "\n")
	return line, nil
}

func dialogEnv(save bool, opts shell.FileDialogOptions) []string {
	mode := "open"
	if save {
		mode = "save"
	}
	env := []string{
		"POPUP_SHELL_DIALOG_MODE=" + mode,
		"POPUP_SHELL_DIALOG_TITLE=" + opts.Title,
		"POPUP_SHELL_DIALOG_DIR=" + opts.Directory,
		"POPUP_SHELL_DIALOG_NAME=" + opts.DefaultName,
		"POPUP_SHELL_DIALOG_TYPES=" + strings.Join(opts.AllowedTypes, ","),
	}
	if opts.ShowHidden {
		env = append(env, "POPUP_SHELL_DIALOG_HIDDEN=1")
	}
	return env
}

// promptPath asks for a path on out and reads one line from in. An empty
// answer cancels; for save dialogs it falls back to the default name.
func promptPath(in io.Reader, out io.Writer, save bool, opts shell.FileDialogOptions) (string, error) {
	title := opts.Title
	if title == "" {
		title = "Open file"
		if save {
			title = "Save as"
		}
	}
	prompt := title
	if opts.DefaultName != "" {
		prompt += " [" + opts.DefaultName + "]"
	}
	fmt.Fprintf(out, "%s: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read path: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" && save {
		line = opts.DefaultName
	}
	if line != "" && opts.Directory != "" && !filepath.IsAbs(line) {
		line = filepath.Join(opts.Directory, line)
	}
	return line, nil
}
