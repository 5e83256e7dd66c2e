// Package messages holds the user-facing text of the portal.
package messages

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message ids.
const (
	Welcome           = "Welcome"
	PageLoaded        = "PageLoaded"
	NoEvents          = "NoEvents"
	NoChoices         = "NoChoices"
	ChoiceLabel       = "ChoiceLabel"
	Registered        = "Registered"
	RegisterFailed    = "RegisterFailed"
	ReasonNotFound    = "ReasonNotFound"
	ReasonNoSeats     = "ReasonNoSeats"
	FieldsRequired    = "FieldsRequired"
	NoLongerAvailable = "NoLongerAvailable"
	Thanks            = "Thanks"
	SubmitFailed      = "SubmitFailed"
	NetworkError      = "NetworkError"
)

// Catalog renders messages for a single locale.
type Catalog struct {
	localizer *i18n.Localizer
	logger    *slog.Logger
}

// NewCatalog loads the embedded message files. Unknown locales fall back
// to English.
func NewCatalog(locale string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir(".")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f.Name()); err != nil {
			return nil, err
		}
	}

	langs := []string{language.English.String()}
	if locale != "" {
		langs = append([]string{locale}, langs...)
	}
	return &Catalog{
		localizer: i18n.NewLocalizer(bundle, langs...),
		logger:    logger,
	}, nil
}

// T renders the message with the given template data. Missing ids render
// as the id itself.
func (c *Catalog) T(id string, data map[string]any) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		c.logger.Warn("localize failed", "id", id, "error", err)
		return id
	}
	return msg
}
