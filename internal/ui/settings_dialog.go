package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/former/internal/config"
	"github.com/ytget/former/internal/model"
)

// SettingsDialog edits the engine and host settings
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	rowAnimationSelect    *widget.Select
	inlineAnimationSelect *widget.Select
	keyboardCheck         *widget.Check
	cellHeightEntry       *widget.Entry
	debugCheck            *widget.Check
	hostSelect            *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	var animations []string
	for _, a := range sd.settings.GetAnimationOptions() {
		animations = append(animations, a.String())
	}
	sd.rowAnimationSelect = widget.NewSelect(animations, nil)
	sd.inlineAnimationSelect = widget.NewSelect(animations, nil)

	sd.keyboardCheck = widget.NewCheck(t(KeyKeyboardAvoidance), nil)
	sd.debugCheck = widget.NewCheck(t(KeyDebugLogging), nil)

	sd.cellHeightEntry = widget.NewEntry()
	sd.cellHeightEntry.SetPlaceHolder(strconv.Itoa(config.MinCellHeight) + "-" + strconv.Itoa(config.MaxCellHeight))

	var hosts []string
	for _, h := range sd.settings.GetHostOptions() {
		hosts = append(hosts, h.String())
	}
	sd.hostSelect = widget.NewSelect(hosts, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyRowAnimation)+":"),
		sd.rowAnimationSelect,

		widget.NewLabel(t(KeyInlineAnimation)+":"),
		sd.inlineAnimationSelect,

		widget.NewLabel(t(KeyCellHeight)+":"),
		sd.cellHeightEntry,

		sd.keyboardCheck,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyHost)+":"),
		sd.hostSelect,
		sd.debugCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(380, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.rowAnimationSelect.SetSelected(sd.settings.GetRowAnimation().String())
	sd.inlineAnimationSelect.SetSelected(sd.settings.GetInlineAnimation().String())
	sd.keyboardCheck.SetChecked(sd.settings.GetKeyboardAvoidance())
	sd.cellHeightEntry.SetText(strconv.Itoa(sd.settings.GetDefaultCellHeight()))
	sd.debugCheck.SetChecked(sd.settings.GetDebugLogging())
	sd.hostSelect.SetSelected(sd.settings.GetHost().String())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save writes the UI state to the settings. Invalid input keeps the stored value.
func (sd *SettingsDialog) save() {
	if sd.rowAnimationSelect.Selected != "" {
		sd.settings.SetRowAnimation(model.ParseRowAnimation(sd.rowAnimationSelect.Selected, sd.settings.GetRowAnimation()))
	}
	if sd.inlineAnimationSelect.Selected != "" {
		sd.settings.SetInlineAnimation(model.ParseRowAnimation(sd.inlineAnimationSelect.Selected, sd.settings.GetInlineAnimation()))
	}
	if height, err := strconv.Atoi(sd.cellHeightEntry.Text); err == nil {
		sd.settings.SetDefaultCellHeight(height)
	}
	sd.settings.SetKeyboardAvoidance(sd.keyboardCheck.Checked)
	sd.settings.SetDebugLogging(sd.debugCheck.Checked)
	if host := config.Host(sd.hostSelect.Selected); host.IsValid() {
		sd.settings.SetHost(host)
	}
}
