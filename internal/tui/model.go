package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/config"
	"github.com/ytget/former/internal/former"
	"github.com/ytget/former/internal/formspec"
	"github.com/ytget/former/internal/model"
)

const (
	// InputPanelHeight is the height of the bordered text input panel
	InputPanelHeight = 3

	titleHeight  = 1
	statusHeight = 1
	helpHeight   = 1

	// DefaultTitle is shown for documents without a title
	DefaultTitle = "Former"
)

// Config is what a Model shows
type Config struct {
	Document *formspec.Document
	// Settings may be nil for the defaults
	Settings *config.Settings
	Log      *logrus.Entry
}

// Model is the bubbletea model of a form
type Model struct {
	former   *former.Former
	table    *Table
	form     *formspec.Form
	keyboard *former.KeyboardCenter
	titles   map[string]string

	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles Styles

	editing *TextRow
	title   string
	status  string

	width, height int
	quitting      bool
	log           *logrus.Entry
}

var _ tea.Model = (*Model)(nil)

// New builds the form of cfg.Document
func New(cfg Config) (*Model, error) {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger().WithField("component", "tui")
	}
	styles := DefaultStyles()
	input := textinput.New()
	input.Prompt = "> "

	m := &Model{
		keyboard: former.NewKeyboardCenter(),
		titles:   make(map[string]string),
		keys:     newKeyMap(),
		help:     help.New(),
		input:    input,
		styles:   styles,
		title:    cfg.Document.Title,
		log:      log,
	}
	m.table = NewTable(styles, log.WithField("component", "table"))
	m.table.SetOnEndEditing(m.endEditing)

	opts := []former.Option{former.WithKeyboard(m.keyboard)}
	if cfg.Settings != nil {
		opts = cfg.Settings.FormerOptions(m.keyboard)
	}
	opts = append(opts, former.WithLogger(log.WithField("component", "former")))
	m.former = former.New(m.table, opts...)

	form, err := formspec.Build(cfg.Document, &RowFactory{OnFocus: m.beginEditing})
	if err != nil {
		m.former.Dispose()
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	m.form = form
	for _, section := range cfg.Document.Sections {
		for _, row := range section.Rows {
			m.titles[row.Key] = row.DisplayTitle()
		}
	}
	m.former.Add(form.Sections...).ReloadFormer()
	m.former.OnCellSelected = func(path model.IndexPath) {
		m.log.WithFields(logrus.Fields{"section": path.Section, "row": path.Row}).Debug("Row selected")
	}
	if m.title == "" {
		m.title = DefaultTitle
	}
	m.table.MoveCursor(0)
	return m, nil
}

// Former returns the form engine
func (m *Model) Former() *former.Former {
	return m.former
}

// Table returns the terminal list host
func (m *Model) Table() *Table {
	return m.table
}

// Form returns the built document
func (m *Model) Form() *formspec.Form {
	return m.form
}

// Keyboard returns the event hub the input panel is posted to
func (m *Model) Keyboard() *former.KeyboardCenter {
	return m.keyboard
}

// Editing returns the row in the input panel, or nil
func (m *Model) Editing() *TextRow {
	return m.editing
}

// Status returns the status line
func (m *Model) Status() string {
	return m.status
}

// Values returns the captured values by row key
func (m *Model) Values() map[string]string {
	return m.form.Values()
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if m.editing != nil {
			return m, m.updateEditing(msg)
		}
		return m, m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Done):
		m.former.EndEditing()
	case key.Matches(msg, m.keys.Previous):
		m.commit()
		if !m.former.BecomeEditingPrevious() {
			m.former.EndEditing()
		}
	case key.Matches(msg, m.keys.Next), msg.Type == tea.KeyEnter:
		m.commit()
		if !m.former.BecomeEditingNext() {
			m.former.EndEditing()
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.commit()
		return cmd
	}
	return nil
}

func (m *Model) updateBrowsing(msg tea.KeyMsg) tea.Cmd {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.table.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveCursor(1)
	case key.Matches(msg, m.keys.Left):
		m.cyclePicker(-1)
	case key.Matches(msg, m.keys.Right):
		m.cyclePicker(1)
	case key.Matches(msg, m.keys.Select):
		m.table.Tap()
	case key.Matches(msg, m.keys.Next):
		if !m.former.BecomeEditingNext() {
			m.status = "No next field"
		}
	case key.Matches(msg, m.keys.Previous):
		if !m.former.BecomeEditingPrevious() {
			m.status = "No previous field"
		}
	case key.Matches(msg, m.keys.Done):
		m.Done()
	case key.Matches(msg, m.keys.Validate):
		m.showValidation()
	case key.Matches(msg, m.keys.PageUp):
		m.table.Page(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.table.Page(1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// Done ends editing and collapses the expanded selector
func (m *Model) Done() {
	m.former.EndEditing()
	if path, ok := m.former.SelectedIndexPath(); ok && m.former.ExpandedRow() != nil {
		m.former.Select(path, false, model.ScrollPositionNone)
	}
}

// InvalidTitles validates every row and returns the titles of those that failed
func (m *Model) InvalidTitles() []string {
	var titles []string
	for _, row := range m.former.ValidateAll() {
		if title, ok := m.titles[m.form.Key(row)]; ok {
			titles = append(titles, title)
		}
	}
	return titles
}

func (m *Model) showValidation() {
	invalid := m.InvalidTitles()
	if len(invalid) == 0 {
		m.status = "✔ All fields are valid"
		return
	}
	m.status = "✘ Needs a value: " + strings.Join(invalid, ", ")
}

func (m *Model) cyclePicker(delta int) {
	path, ok := m.table.Cursor()
	if !ok {
		return
	}
	if picker, ok := m.former.RowFormer(path).(*PickerRow); ok {
		picker.Cycle(delta)
	}
}

func (m *Model) quit() tea.Cmd {
	m.former.EndEditing()
	m.quitting = true
	return tea.Quit
}

// beginEditing opens the input panel for row and posts its frame
func (m *Model) beginEditing(row *TextRow) {
	if m.editing == row {
		return
	}
	if m.editing != nil {
		m.endEditing()
	}
	m.editing = row
	m.input.SetValue(row.Text())
	m.input.Placeholder = row.Placeholder
	m.input.CursorEnd()
	m.input.Focus()
	row.setFocused(true)

	m.keyboard.PostWillShow(former.KeyboardNotification{
		EndFrame: m.panelFrame(),
		Curve:    model.AnimationCurveLinear,
	})
}

// endEditing keeps the typed text and closes the input panel
func (m *Model) endEditing() {
	row := m.editing
	if row == nil {
		return
	}
	m.commit()
	m.editing = nil
	m.input.Blur()
	row.setFocused(false)

	m.keyboard.PostWillHide(former.KeyboardNotification{
		EndFrame: m.panelFrame(),
		Curve:    model.AnimationCurveLinear,
	})
}

func (m *Model) commit() {
	if m.editing != nil && m.editing.Text() != m.input.Value() {
		m.editing.SetText(m.input.Value())
	}
}

// panelFrame is the screen area of the input panel: the bottom lines of the table
func (m *Model) panelFrame() model.Rect {
	frame := m.table.Frame()
	return model.NewRect(0, frame.MaxY()-InputPanelHeight, frame.Width, InputPanelHeight)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.input.Width = max(0, width-8)
	m.table.SetBounds(titleHeight, width, max(0, height-titleHeight-statusHeight-helpHeight))
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	frame := m.table.Frame()
	lines := fitLines(strings.Split(m.table.View(), "\n"), int(frame.Height))
	if m.editing != nil && len(lines) >= InputPanelHeight {
		panel := strings.Split(m.renderPanel(), "\n")
		copy(lines[len(lines)-InputPanelHeight:], fitLines(panel, InputPanelHeight))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderPanel() string {
	width := max(0, m.width-2)
	content := m.editing.Title + " " + m.input.View()
	return m.styles.Panel.Width(width).Render(content)
}
