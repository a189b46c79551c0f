package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeyDone              = "done"
	KeyValidate          = "validate"
	KeySettings          = "settings"
	KeyOpenDocument      = "open_document"
	KeyAllValid          = "all_valid"
	KeyInvalidRows       = "invalid_rows"
	KeyRowAnimation      = "row_animation"
	KeyInlineAnimation   = "inline_animation"
	KeyKeyboardAvoidance = "keyboard_avoidance"
	KeyCellHeight        = "cell_height"
	KeyDebugLogging      = "debug_logging"
	KeyHost              = "host"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyNoDocument        = "no_document"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Former",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyDone:              "Done",
		KeyValidate:          "Validate",
		KeySettings:          "Settings",
		KeyOpenDocument:      "Open document",
		KeyAllValid:          "All rows are valid",
		KeyInvalidRows:       "These rows need a value:",
		KeyRowAnimation:      "Row animation",
		KeyInlineAnimation:   "Inline animation",
		KeyKeyboardAvoidance: "Keep focused row above the keyboard",
		KeyCellHeight:        "Default row height",
		KeyDebugLogging:      "Debug logging",
		KeyHost:              "Host",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved. They apply to the next form you open.",
		KeyErrorOpeningFile:  "Error opening file",
		KeyNoDocument:        "This form was not loaded from a file",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Former",
		KeyPrevious:          "Назад",
		KeyNext:              "Далее",
		KeyDone:              "Готово",
		KeyValidate:          "Проверить",
		KeySettings:          "Настройки",
		KeyOpenDocument:      "Открыть документ",
		KeyAllValid:          "Все поля заполнены верно",
		KeyInvalidRows:       "Заполните поля:",
		KeyRowAnimation:      "Анимация строк",
		KeyInlineAnimation:   "Анимация встроенных строк",
		KeyKeyboardAvoidance: "Держать поле над клавиатурой",
		KeyCellHeight:        "Высота строки",
		KeyDebugLogging:      "Отладочный журнал",
		KeyHost:              "Интерфейс",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены. Они применятся к следующей форме.",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyNoDocument:        "Форма загружена не из файла",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Former",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próximo",
		KeyDone:              "Concluir",
		KeyValidate:          "Validar",
		KeySettings:          "Configurações",
		KeyOpenDocument:      "Abrir documento",
		KeyAllValid:          "Todos os campos são válidos",
		KeyInvalidRows:       "Estes campos precisam de um valor:",
		KeyRowAnimation:      "Animação de linhas",
		KeyInlineAnimation:   "Animação em linha",
		KeyKeyboardAvoidance: "Manter o campo acima do teclado",
		KeyCellHeight:        "Altura da linha",
		KeyDebugLogging:      "Log de depuração",
		KeyHost:              "Interface",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas. Valem para o próximo formulário.",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyNoDocument:        "Este formulário não foi carregado de um arquivo",
	}
}
