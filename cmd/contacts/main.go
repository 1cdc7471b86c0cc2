package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contacts/internal/config"
	"github.com/smileynet/contacts/internal/contact"
	"github.com/smileynet/contacts/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Config string `help:"Extra config file layered over user and project config." type:"path" placeholder:"PATH"`
}

// CLI is the top-level command structure for contacts.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Run     RunCmd           `cmd:"" default:"1" help:"Open the contacts screen."`
	List    ListCmd          `cmd:"" help:"Print the configured contacts."`
}

var (
	errNoTTY  = errors.New("requires a terminal (TTY)")
	errScreen = errors.New("screen failed")
)

// RunCmd opens the interactive contacts screen.
type RunCmd struct {
	Favorites   bool `help:"Start in the favorites view." default:"false"`
	NoAltScreen bool `help:"Render inline instead of on the alternate screen." default:"false"`
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds the store and screen and runs the Bubble Tea program.
func (r *RunCmd) Run(g *Globals) error {
	if !tui.IsTerminal(os.Stdout) {
		return fmt.Errorf("run: %w", errNoTTY)
	}

	cfg, err := loadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer func() { _ = closeLog() }()

	store := newStore(cfg, r.Favorites, logger)
	m := tui.NewModel(store, tui.WithTitles(tui.Titles{
		All:       cfg.UI.TitleAll,
		Favorites: cfg.UI.TitleFavorites,
	}))

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen && !r.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	prog := tea.NewProgram(m, opts...)
	return r.run(true, prog, logger)
}

// run executes the tea program, enabling testable wiring.
func (r *RunCmd) run(isTTY bool, prog teaRunner, logger *slog.Logger) error {
	if !isTTY {
		return fmt.Errorf("run: %w", errNoTTY)
	}
	logger.Info("screen started")
	if _, err := prog.Run(); err != nil {
		logger.Error("screen failed", "err", err)
		return fmt.Errorf("run: %w: %w", errScreen, err)
	}
	logger.Info("screen closed")
	return nil
}

// ListCmd prints the configured contacts without opening the screen.
type ListCmd struct {
	Favorites bool `help:"Only print favorites." default:"false"`
	Plain     bool `help:"Force tab-separated output even if stdout is a TTY." default:"false"`
}

// Run executes the list command.
func (l *ListCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return l.run(os.Stdout, cfg, tui.IsTerminal(os.Stdout))
}

// run prints the visible contacts to w, enabling testable wiring.
func (l *ListCmd) run(w io.Writer, cfg *config.Config, isTTY bool) error {
	store := newStore(cfg, l.Favorites, slog.New(slog.DiscardHandler))
	title := cfg.UI.TitleAll
	if store.ShowFavoritesOnly() {
		title = cfg.UI.TitleFavorites
	}
	opts := tui.PrintOptions{
		Title:         title,
		FavoritesOnly: store.ShowFavoritesOnly(),
		Plain:         l.Plain || !isTTY,
	}
	if err := tui.PrintContacts(w, store.Visible(), opts); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

// loadConfig loads layered config from user, project and extra paths with
// env overrides, then validates it.
func loadConfig(extra string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/contacts/config.yaml"),
		".contacts/config.yaml",
		extra,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newStore seeds a store from cfg and logs every state change.
func newStore(cfg *config.Config, favorites bool, logger *slog.Logger) *contact.Store {
	store := contact.NewStore(
		contact.WithContacts(cfg.Seeds()),
		contact.WithFavoritesOnly(favorites || cfg.UI.FavoritesView),
	)
	store.Subscribe(logEvents(logger))
	return store
}

// logEvents returns a store subscriber that records each event at debug level.
func logEvents(logger *slog.Logger) func(contact.Event) {
	return func(ev contact.Event) {
		switch ev.Kind {
		case contact.EventAdded, contact.EventFavoriteToggled:
			logger.Debug("contact changed", "event", string(ev.Kind), "id", ev.Contact.ID.String(), "favorite", ev.Contact.Favorite)
		default:
			logger.Debug("view changed", "event", string(ev.Kind))
		}
	}
}

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errScreen) {
		return exitRuntime
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("contacts"),
		kong.Description("Keep a contact list and its favorites in the terminal."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
