package cli

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"organizer/internal/api"
	"organizer/internal/config"

	"github.com/rs/zerolog"
)

// App is what every command handler works against: the API, the display
// settings and the streams to talk to the user on.
type App struct {
	api    api.API
	config *config.Config
	logger zerolog.Logger
	out    io.Writer
	in     *bufio.Reader
	styles *Styles
}

// AppOption configures an App
type AppOption func(*App)

// WithOutput sets where command output is written
func WithOutput(w io.Writer) AppOption {
	return func(a *App) { a.out = w }
}

// WithInput sets where confirmations are read from
func WithInput(r io.Reader) AppOption {
	return func(a *App) { a.in = bufio.NewReader(r) }
}

// WithLogger sets the logger used for command failures
func WithLogger(logger zerolog.Logger) AppOption {
	return func(a *App) { a.logger = logger }
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:    apiInstance,
		config: cfg,
		logger: zerolog.Nop(),
		out:    os.Stdout,
		in:     bufio.NewReader(os.Stdin),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.styles = NewStyles(app.out, cfg.Display.Color)
	return app
}

// formatDate renders a day with the configured date format
func (a *App) formatDate(t time.Time) string {
	return t.Format(a.config.Display.DateFormat)
}

func (a *App) now() time.Time {
	return a.api.Now()
}

// confirm asks a yes/no question and reports whether the answer was yes
func (a *App) confirm(question string) bool {
	a.printf("%s [y/N]: ", question)
	answer, _ := a.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	default:
		return false
	}
}

func (a *App) printf(format string, args ...interface{}) {
	_, _ = io.WriteString(a.out, sprintf(format, args...))
}

func (a *App) println(s string) {
	_, _ = io.WriteString(a.out, s+"\n")
}
