package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/config"
	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/formspec"
	"github.com/ytget/former/internal/model"
	"github.com/ytget/former/internal/platform"
)

// WindowConfig is what a FormWindow shows and how
type WindowConfig struct {
	Document *formspec.Document
	// DocumentPath is empty for documents not loaded from a file
	DocumentPath string
	Settings     *config.Settings
	Log          *logrus.Entry
}

// FormWindow shows one form document
type FormWindow struct {
	window       fyne.Window
	table        *TableView
	former       *former.Former
	form         *formspec.Form
	keyboard     *former.KeyboardCenter
	estimator    *KeyboardEstimator
	settings     *config.Settings
	localization *Localization
	documentPath string
	titles       map[string]string
	log          *logrus.Entry
}

// NewFormWindow builds the form of cfg.Document in a new window of app
func NewFormWindow(app fyne.App, cfg WindowConfig) (*FormWindow, error) {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger().WithField("component", "ui")
	}
	settings := cfg.Settings
	if settings == nil {
		settings = config.NewAppSettings(app)
	}

	localization := NewLocalization()
	localization.SetLanguage(systemLanguage())

	title := cfg.Document.Title
	if title == "" {
		title = localization.GetText(KeyAppTitle)
	}
	window := app.NewWindow(title)

	fw := &FormWindow{
		window:       window,
		keyboard:     former.NewKeyboardCenter(),
		settings:     settings,
		localization: localization,
		documentPath: cfg.DocumentPath,
		titles:       make(map[string]string),
		log:          log,
	}

	fw.table = NewTableView(WithTableLogger(log.WithField("component", "table")))
	opts := append(settings.FormerOptions(fw.keyboard), former.WithLogger(log.WithField("component", "former")))
	fw.former = former.New(fw.table, opts...)

	mobile := NewMobileUI()
	fw.estimator = NewKeyboardEstimator(fw.keyboard, window.Canvas(), mobile, log)

	factory := NewRowFactory(mobile.RowHeight(float32(settings.GetDefaultCellHeight())))
	factory.OnFocusChanged = fw.estimator.FocusChanged

	form, err := formspec.Build(cfg.Document, factory)
	if err != nil {
		window.Close()
		fw.former.Dispose()
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	fw.form = form
	for _, section := range cfg.Document.Sections {
		for _, row := range section.Rows {
			fw.titles[row.Key] = row.DisplayTitle()
		}
	}

	fw.former.Add(form.Sections...).ReloadFormer()
	fw.former.OnCellSelected = func(path model.IndexPath) {
		fw.log.WithFields(logrus.Fields{"section": path.Section, "row": path.Row}).Debug("Row selected")
	}

	window.SetIcon(AppIcon())
	window.SetContent(container.NewBorder(fw.createToolbar(), nil, nil, nil, fw.table))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetOnClosed(fw.former.Dispose)

	log.WithFields(logrus.Fields{
		"title":    title,
		"sections": len(form.Sections),
		"rows":     cfg.Document.RowCount(),
	}).Info("Form window created")
	return fw, nil
}

func (fw *FormWindow) createToolbar() *widget.Toolbar {
	return widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() { fw.Previous() }),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() { fw.Next() }),
		widget.NewToolbarAction(theme.ConfirmIcon(), fw.Done),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.WarningIcon(), fw.showValidation),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.DocumentIcon(), fw.openDocument),
		widget.NewToolbarAction(theme.SettingsIcon(), fw.showSettings),
	)
}

// Window returns the Fyne window
func (fw *FormWindow) Window() fyne.Window {
	return fw.window
}

// Former returns the form engine
func (fw *FormWindow) Former() *former.Former {
	return fw.former
}

// Table returns the list host
func (fw *FormWindow) Table() *TableView {
	return fw.table
}

// Form returns the built document
func (fw *FormWindow) Form() *formspec.Form {
	return fw.form
}

// Keyboard returns the keyboard event hub of the window
func (fw *FormWindow) Keyboard() *former.KeyboardCenter {
	return fw.keyboard
}

// Estimator returns the on-screen keyboard estimator
func (fw *FormWindow) Estimator() *KeyboardEstimator {
	return fw.estimator
}

// Previous moves editing to the previous editable row
func (fw *FormWindow) Previous() bool {
	return fw.former.BecomeEditingPrevious()
}

// Next moves editing to the next editable row
func (fw *FormWindow) Next() bool {
	return fw.former.BecomeEditingNext()
}

// Done ends text editing and collapses the expanded selector
func (fw *FormWindow) Done() {
	fw.former.EndEditing()
	if path, ok := fw.former.SelectedIndexPath(); ok && fw.former.ExpandedRow() != nil {
		fw.former.Select(path, false, model.ScrollPositionNone)
	}
}

// InvalidTitles validates every row and returns the titles of those that failed
func (fw *FormWindow) InvalidTitles() []string {
	var titles []string
	for _, row := range fw.former.ValidateAll() {
		key := fw.form.Key(row)
		if title, ok := fw.titles[key]; ok {
			titles = append(titles, title)
		}
	}
	return titles
}

func (fw *FormWindow) showValidation() {
	t := fw.localization.GetText
	invalid := fw.InvalidTitles()
	if len(invalid) == 0 {
		dialog.ShowInformation(t(KeyValidate), IconValid+" "+t(KeyAllValid), fw.window)
		return
	}
	message := t(KeyInvalidRows) + "\n" + IconInvalid + " " + strings.Join(invalid, "\n"+IconInvalid+" ")
	dialog.ShowInformation(t(KeyValidate), message, fw.window)
}

func (fw *FormWindow) openDocument() {
	t := fw.localization.GetText
	if fw.documentPath == "" {
		dialog.ShowInformation(t(KeyOpenDocument), t(KeyNoDocument), fw.window)
		return
	}
	if err := platform.OpenFileWithDefaultApp(fw.documentPath); err != nil {
		fw.log.WithError(err).Warn("Failed to open form document")
		dialog.ShowError(fmt.Errorf("%s: %w", t(KeyErrorOpeningFile), err), fw.window)
	}
}

func (fw *FormWindow) showSettings() {
	NewSettingsDialog(fw.settings, fw.localization, fw.window).Show()
}

// ShowAndRun shows the window and runs the application
func (fw *FormWindow) ShowAndRun() {
	fw.window.ShowAndRun()
}

func systemLanguage() string {
	locale := lang.SystemLocale().LanguageString()
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return strings.ToLower(locale)
}
