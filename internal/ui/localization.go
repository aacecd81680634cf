package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyBack               = "back"
	KeyUp                 = "up"
	KeyCopy               = "copy"
	KeyCut                = "cut"
	KeyPaste              = "paste"
	KeyDelete             = "delete"
	KeyOpen               = "open"
	KeyReveal             = "reveal"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyStartDirectory     = "start_directory"
	KeyShowHidden         = "show_hidden"
	KeyConfirmDelete      = "confirm_delete"
	KeyViewMode           = "view_mode"
	KeyViewList           = "view_list"
	KeyViewIcons          = "view_icons"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyStatusReady        = "status_ready"
	KeyCopied             = "copied"
	KeyCutStaged          = "cut_staged"
	KeyNothingToPaste     = "nothing_to_paste"
	KeyInvalidLocation    = "invalid_location"
	KeyPathNotFound       = "path_not_found"
	KeyDeleteConfirmTitle = "delete_confirm_title"
	KeyDeleteConfirmMsg   = "delete_confirm_msg"
	KeyNothingSelected    = "nothing_selected"
	KeyErrorOpeningFile   = "error_opening_file"
	KeySettingsSaved      = "settings_saved"
	KeyItems              = "items"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
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

	// Final fallback - return key itself
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
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "File Pane",
		KeyBack:               "Back",
		KeyUp:                 "Up",
		KeyCopy:               "Copy",
		KeyCut:                "Cut",
		KeyPaste:              "Paste",
		KeyDelete:             "Delete",
		KeyOpen:               "Open",
		KeyReveal:             "Reveal",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyStartDirectory:     "Start Directory",
		KeyShowHidden:         "Show hidden files",
		KeyConfirmDelete:      "Confirm before deleting",
		KeyViewMode:           "View Mode",
		KeyViewList:           "List",
		KeyViewIcons:          "Icons",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyStatusReady:        "Ready",
		KeyCopied:             "Copied to clipboard",
		KeyCutStaged:          "Cut to clipboard",
		KeyNothingToPaste:     "Nothing to paste",
		KeyInvalidLocation:    "Current location is not a directory",
		KeyPathNotFound:       "Path not found",
		KeyDeleteConfirmTitle: "Delete",
		KeyDeleteConfirmMsg:   "Delete the selected items? Directories are removed with their contents.",
		KeyNothingSelected:    "Nothing selected",
		KeyErrorOpeningFile:   "Error opening file",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyItems:              "items",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Файловая панель",
		KeyBack:               "Назад",
		KeyUp:                 "Вверх",
		KeyCopy:               "Копировать",
		KeyCut:                "Вырезать",
		KeyPaste:              "Вставить",
		KeyDelete:             "Удалить",
		KeyOpen:               "Открыть",
		KeyReveal:             "Показать в папке",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyStartDirectory:     "Стартовая папка",
		KeyShowHidden:         "Показывать скрытые файлы",
		KeyConfirmDelete:      "Подтверждать удаление",
		KeyViewMode:           "Режим просмотра",
		KeyViewList:           "Список",
		KeyViewIcons:          "Значки",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyStatusReady:        "Готово",
		KeyCopied:             "Скопировано в буфер обмена",
		KeyCutStaged:          "Вырезано в буфер обмена",
		KeyNothingToPaste:     "Нечего вставлять",
		KeyInvalidLocation:    "Текущее расположение не является папкой",
		KeyPathNotFound:       "Путь не найден",
		KeyDeleteConfirmTitle: "Удаление",
		KeyDeleteConfirmMsg:   "Удалить выбранные элементы? Папки удаляются вместе с содержимым.",
		KeyNothingSelected:    "Ничего не выбрано",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeySettingsSaved:      "Настройки сохранены!",
		KeyItems:              "элементов",
	}
}
