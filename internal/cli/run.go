package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/former/internal/config"
	"github.com/ytget/former/internal/formspec"
	"github.com/ytget/former/internal/platform"
	"github.com/ytget/former/internal/tui"
	"github.com/ytget/former/internal/ui"
)

// AppID is the fyne application ID
const AppID = "com.ytget.former"

// LogFileName is the log file of the terminal host inside the config directory
const LogFileName = "former.log"

// ErrNoTerminal is returned when the terminal host is asked for without a terminal
var ErrNoTerminal = errors.New("the terminal host needs an interactive terminal")

// RunOptions holds flags of the run command.
type RunOptions struct {
	Form string
	Host string
}

// Session is what a host needs to show a document
type Session struct {
	Document *formspec.Document
	// Path is empty for the embedded demo form
	Path     string
	Settings *config.Settings
	Log      *logrus.Entry
}

// HostRunner shows a document until the user is done and returns the captured
// values, or nil when the host does not report them
type HostRunner func(s Session) (map[string]string, error)

// HostRunners maps each host to its runner
var HostRunners = map[config.Host]HostRunner{
	config.HostFyne: runFyne,
	config.HostTUI:  runTUI,
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show a form document",
		Long: `Show a form document in the fyne window or in the terminal.

Without --form the embedded demo form is shown. Without --host the host stored
in the settings is used. The terminal host prints the captured values as YAML
when it exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Form, "form", "f", "", "form document (.yaml, .toml or .json)")
	cmd.Flags().StringVar(&opts.Host, "host", "", "host to render with (fyne|tui)")

	return cmd
}

func runForm(cmd *cobra.Command, rootOpts *RootOptions, opts *RunOptions) error {
	store, err := openStore(rootOpts, nil)
	if err != nil {
		return err
	}
	settings := config.NewSettings(store)

	logger := NewLogger(cmd.ErrOrStderr(), rootOpts.Debug || settings.GetDebugLogging())
	log := logger.WithField("component", "cli")

	host := settings.GetHost()
	if opts.Host != "" {
		host = config.Host(opts.Host)
		if !host.IsValid() {
			return fmt.Errorf("unknown host %q: must be one of %v", opts.Host, settings.GetHostOptions())
		}
	}
	runner, ok := HostRunners[host]
	if !ok {
		return fmt.Errorf("no runner for host %q", host)
	}

	doc, err := loadDocument(opts.Form)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"host":     host,
		"form":     opts.Form,
		"sections": len(doc.Sections),
		"rows":     doc.RowCount(),
	}).Debug("Running form")

	values, err := runner(Session{
		Document: doc,
		Path:     opts.Form,
		Settings: settings,
		Log:      logger.WithField("host", host.String()),
	})
	if err != nil {
		return err
	}
	if values == nil {
		return nil
	}
	return writeValues(cmd, values)
}

func loadDocument(path string) (*formspec.Document, error) {
	if path == "" {
		return DemoDocument()
	}
	return formspec.Load(path)
}

func openStore(rootOpts *RootOptions, log *logrus.Entry) (*config.FileStore, error) {
	if rootOpts.ConfigFile != "" {
		return config.OpenFileStore(rootOpts.ConfigFile, log)
	}
	return config.OpenDefaultFileStore(log)
}

func writeValues(cmd *cobra.Command, values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runFyne(s Session) (map[string]string, error) {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())
	fw, err := ui.NewFormWindow(a, ui.WindowConfig{
		Document:     s.Document,
		DocumentPath: s.Path,
		Settings:     s.Settings,
		Log:          s.Log,
	})
	if err != nil {
		return nil, err
	}
	fw.ShowAndRun()
	return fw.Form().Values(), nil
}

func runTUI(s Session) (map[string]string, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return nil, ErrNoTerminal
	}
	// the program owns the screen
	closeLog := redirectLog(s.Log.Logger)
	defer closeLog()
	return tui.Run(tui.Config{
		Document: s.Document,
		Settings: s.Settings,
		Log:      s.Log,
	})
}

// redirectLog sends logger to the log file, or discards its output when the file
// cannot be opened
func redirectLog(logger *logrus.Logger) (closeLog func()) {
	dir, err := platform.EnsureConfigDir()
	if err != nil {
		logger.SetOutput(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, platform.DefaultFilePermissions)
	if err != nil {
		logger.SetOutput(io.Discard)
		return func() {}
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return func() { _ = f.Close() }
}
