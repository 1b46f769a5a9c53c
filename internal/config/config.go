package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-shell/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTitle     = "POPUP_SHELL_TITLE"
	envEnvFile   = "POPUP_SHELL_ENV_FILE"
	envWatch     = "POPUP_SHELL_WATCH"
	envChooser   = "POPUP_SHELL_CHOOSER"
	envBlockKey  = "POPUP_SHELL_BLOCK_KEY"
	envClipboard = "POPUP_SHELL_CLIPBOARD"
	envTrace     = "POPUP_SHELL_TRACE"
	envLogFile   = "POPUP_SHELL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-shell", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	title := fs.String("title", envOrDefault(env, envTitle, "popup-shell"), "title of the first window")
	envFile := fs.String("env-file", envOrDefault(env, envEnvFile, ""), "path to an env file (toml, yaml, json) with theme and widget values")
	watch := fs.String("watch", envOrDefault(env, envWatch, ""), "comma separated paths to watch for changes")
	chooser := fs.String("chooser", envOrDefault(env, envChooser, ""), "shell command printing the chosen path for file dialogs")
	blockKey := fs.String("block-key", envOrDefault(env, envBlockKey, ""), "key the delegate swallows before any window sees it")
	clipboard := fs.Bool("clipboard", envOrBool(env, envClipboard, true), "use the system clipboard when available")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Title:           strings.TrimSpace(*title),
			EnvFile:         *envFile,
			Watch:           splitList(*watch),
			Chooser:         *chooser,
			BlockedKey:      *blockKey,
			SystemClipboard: *clipboard,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"title":     *title,
			"envFile":   *envFile,
			"watch":     *watch,
			"chooser":   *chooser,
			"blockKey":  *blockKey,
			"clipboard": strconv.FormatBool(*clipboard),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks that watched paths exist and a blocked key is not one the
// shell itself needs.
func Validate(cfg Config) error {
	for _, path := range cfg.App.Watch {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("watch path: %w", err)
		}
	}
	switch cfg.App.BlockedKey {
	case "ctrl+c", "ctrl+p", "tab":
		return fmt.Errorf("block-key %q is reserved by the shell", cfg.App.BlockedKey)
	}
	return nil
}
