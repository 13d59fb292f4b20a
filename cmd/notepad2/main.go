package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeAlphaBravosite/Notepad2/internal/config"
	"github.com/codeAlphaBravosite/Notepad2/internal/notebook"
	"github.com/codeAlphaBravosite/Notepad2/internal/store"
	"github.com/codeAlphaBravosite/Notepad2/internal/styles"
	"github.com/codeAlphaBravosite/Notepad2/internal/tui"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	dataDir      = flag.String("data", "", "override note storage directory")
	importPath   = flag.String("import", "", "import a note from a JSON export and exit")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("notepad2 version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Storage.DataDir = config.ExpandPath(*dataDir)
	}

	styles.ApplyTheme(cfg.UI.Theme)

	kv, cleanup, err := openStore(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open note store: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	nb := notebook.NewManager(kv, logger)

	if *importPath != "" {
		data, err := os.ReadFile(*importPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *importPath, err)
			os.Exit(1)
		}
		n, err := nb.Import(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %q (%d toggles) as note %d\n", n.Title, len(n.Toggles), n.ID)
		return
	}

	var opts []tui.Option
	if fs, ok := kv.(*store.FileStore); ok && cfg.Storage.WatchExternal {
		stop := make(chan struct{})
		defer close(stop)
		events, err := store.Watch(fs.Dir(), stop)
		if err != nil {
			logger.Warn("store watch unavailable", "err", err)
		} else {
			opts = append(opts, tui.WithStoreEvents(events))
		}
	}

	model := tui.New(cfg, nb, kv, logger, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// openStore builds the configured persistence backend. The returned
// cleanup is safe to call once.
func openStore(cfg *config.Config, logger *slog.Logger) (store.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
			return nil, nil, err
		}
		s, err := store.NewSQLiteStore(filepath.Join(cfg.Storage.DataDir, "notepad2.db"), logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		s, err := store.NewFileStore(cfg.Storage.DataDir, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notepad2 [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal notebook of collapsible toggle notes with undo/redo.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
