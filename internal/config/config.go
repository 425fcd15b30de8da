package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/scripthost/internal/app"
	"github.com/atomicstack/scripthost/internal/modal"
	"github.com/atomicstack/scripthost/internal/popup"
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
	envWidth     = "SCRIPTHOST_WIDTH"
	envHeight    = "SCRIPTHOST_HEIGHT"
	envPopupMode = "SCRIPTHOST_POPUP_MODE"
	envEscapeKey = "SCRIPTHOST_ESCAPE_KEY"
	envFPS       = "SCRIPTHOST_FPS"
	envStatus    = "SCRIPTHOST_STATUS"
	envScript    = "SCRIPTHOST_SCRIPT"
	envTrace     = "SCRIPTHOST_TRACE"
	envLogFile   = "SCRIPTHOST_LOG_FILE"
)

// MaxDimension bounds the configured screen width and height.
const MaxDimension = 4096

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("scripthost", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "screen width assumed before the first resize (0 probes the terminal)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "screen height assumed before the first resize (0 probes the terminal)")
	popupMode := fs.String("popup-mode", envOrDefault(env, envPopupMode, popup.Faithful.String()), "popup placement: faithful (unclamped) or bounded (clamped to the screen)")
	escapeKey := fs.String("escape-key", envOrDefault(env, envEscapeKey, modal.DefaultEscapeKey), "key that force-closes every open popup")
	fps := fs.Int("fps", envOrInt(env, envFPS, 30), "frames per second")
	status := fs.Bool("status", envOrBool(env, envStatus, false), "show the host status bar")
	scriptName := fs.String("script", envOrDefault(env, envScript, app.DefaultScript), "built-in script to run")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := checkDimension("width", *width); err != nil {
		return Config{}, err
	}
	if err := checkDimension("height", *height); err != nil {
		return Config{}, err
	}
	mode, err := popup.ParseMode(*popupMode)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			PopupMode:  mode,
			EscapeKey:  strings.TrimSpace(*escapeKey),
			FPS:        *fps,
			ShowStatus: *status,
			Script:     strings.TrimSpace(*scriptName),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"popupMode": mode.String(),
			"escapeKey": *escapeKey,
			"fps":       strconv.Itoa(*fps),
			"status":    strconv.FormatBool(*status),
			"script":    *scriptName,
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

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
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

func checkDimension(name string, v int) error {
	if v < 0 || v > MaxDimension {
		return fmt.Errorf("%s must be between 0 and %d (got %d)", name, MaxDimension, v)
	}
	return nil
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

// Validate ensures the configuration can build a runtime.
func Validate(cfg Config) error {
	if err := checkDimension("width", cfg.App.Width); err != nil {
		return err
	}
	if err := checkDimension("height", cfg.App.Height); err != nil {
		return err
	}
	if cfg.App.FPS <= 0 {
		return fmt.Errorf("fps must be > 0 (got %d)", cfg.App.FPS)
	}
	if cfg.App.EscapeKey == "" {
		return fmt.Errorf("escape key must not be empty")
	}
	if cfg.App.Script != "" {
		if _, ok := app.Scripts().New(cfg.App.Script); !ok {
			return fmt.Errorf("unknown script %q (available: %s)", cfg.App.Script, strings.Join(app.Scripts().Names(), ", "))
		}
	}
	return nil
}
