package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyServerURL        = "server_url"
	KeyDefaultView      = "default_view"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyUpload           = "upload"
	KeyChooseFile       = "choose_file"
	KeyDescriptionHint  = "description_hint"
	KeyUploading        = "uploading"
	KeyUploadFailed     = "upload_failed"
	KeyUploadCompleted  = "upload_completed"
	KeyStream           = "stream"
	KeyEnterStreamURL   = "enter_stream_url"
	KeyPlayStream       = "play_stream"
	KeyInvalidURL       = "invalid_url"
	KeySearchHint       = "search_hint"
	KeyRetry            = "retry"
	KeyNoFiles          = "no_files"
	KeyLoadingFiles     = "loading_files"
	KeyOnline           = "online"
	KeyOffline          = "offline"
	KeyDownloadToView   = "download_to_view"
	KeyDownloadFile     = "download_file"
	KeyOpenExternally   = "open_externally"
	KeyMuted            = "muted"
	KeySpeed            = "speed"
	KeyErrorOpeningLink = "error_opening_link"
	KeyPreviewFailed    = "preview_failed"
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "OmniCloud",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyServerURL:        "Server Address",
		KeyDefaultView:      "Default View",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyUpload:           "Upload",
		KeyChooseFile:       "Choose File",
		KeyDescriptionHint:  "Description (optional, defaults to filename)",
		KeyUploading:        "Uploading...",
		KeyUploadFailed:     "Upload failed",
		KeyUploadCompleted:  "Upload completed",
		KeyStream:           "Network Stream",
		KeyEnterStreamURL:   "Enter stream URL (http://... or https://...)",
		KeyPlayStream:       "Play Stream",
		KeyInvalidURL:       "Invalid URL",
		KeySearchHint:       "Search files...",
		KeyRetry:            "Retry",
		KeyNoFiles:          "No files found",
		KeyLoadingFiles:     "Loading files...",
		KeyOnline:           "Online",
		KeyOffline:          "Offline",
		KeyDownloadToView:   "Preview is not available for this file type. Download it to view.",
		KeyDownloadFile:     "Download",
		KeyOpenExternally:   "Open in Player",
		KeyMuted:            "Muted",
		KeySpeed:            "Speed",
		KeyErrorOpeningLink: "Error opening link",
		KeyPreviewFailed:    "Failed to open preview",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "OmniCloud",
		KeySettings:         "Настройки",
		KeyLanguage:         "Язык",
		KeyServerURL:        "Адрес сервера",
		KeyDefaultView:      "Вид по умолчанию",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyUpload:           "Загрузить",
		KeyChooseFile:       "Выбрать файл",
		KeyDescriptionHint:  "Описание (необязательно, по умолчанию имя файла)",
		KeyUploading:        "Загрузка...",
		KeyUploadFailed:     "Ошибка загрузки",
		KeyUploadCompleted:  "Загрузка завершена",
		KeyStream:           "Сетевой поток",
		KeyEnterStreamURL:   "Введите URL потока (http://... или https://...)",
		KeyPlayStream:       "Воспроизвести поток",
		KeyInvalidURL:       "Неверный URL",
		KeySearchHint:       "Поиск файлов...",
		KeyRetry:            "Повторить",
		KeyNoFiles:          "Файлы не найдены",
		KeyLoadingFiles:     "Загрузка файлов...",
		KeyOnline:           "В сети",
		KeyOffline:          "Нет связи",
		KeyDownloadToView:   "Предпросмотр для этого типа файла недоступен. Скачайте файл для просмотра.",
		KeyDownloadFile:     "Скачать",
		KeyOpenExternally:   "Открыть в плеере",
		KeyMuted:            "Без звука",
		KeySpeed:            "Скорость",
		KeyErrorOpeningLink: "Ошибка открытия ссылки",
		KeyPreviewFailed:    "Не удалось открыть предпросмотр",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "OmniCloud",
		KeySettings:         "Configurações",
		KeyLanguage:         "Idioma",
		KeyServerURL:        "Endereço do Servidor",
		KeyDefaultView:      "Visualização Padrão",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyUpload:           "Enviar",
		KeyChooseFile:       "Escolher Arquivo",
		KeyDescriptionHint:  "Descrição (opcional, padrão é o nome do arquivo)",
		KeyUploading:        "Enviando...",
		KeyUploadFailed:     "Falha no envio",
		KeyUploadCompleted:  "Envio concluído",
		KeyStream:           "Fluxo de Rede",
		KeyEnterStreamURL:   "Digite a URL do fluxo (http://... ou https://...)",
		KeyPlayStream:       "Reproduzir Fluxo",
		KeyInvalidURL:       "URL inválida",
		KeySearchHint:       "Pesquisar arquivos...",
		KeyRetry:            "Tentar Novamente",
		KeyNoFiles:          "Nenhum arquivo encontrado",
		KeyLoadingFiles:     "Carregando arquivos...",
		KeyOnline:           "Conectado",
		KeyOffline:          "Desconectado",
		KeyDownloadToView:   "Pré-visualização indisponível para este tipo de arquivo. Baixe para visualizar.",
		KeyDownloadFile:     "Baixar",
		KeyOpenExternally:   "Abrir no Player",
		KeyMuted:            "Mudo",
		KeySpeed:            "Velocidade",
		KeyErrorOpeningLink: "Erro ao abrir link",
		KeyPreviewFailed:    "Falha ao abrir pré-visualização",
	}
}
