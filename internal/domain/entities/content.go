package entities

import "time"

// Supported locale tags. Portuguese is the authoritative source locale; the
// secondary locale is a derived, best-effort cache that may be stale or
// missing and must fall back to the source text.
const (
	LocalePTBR = "pt-BR"
	LocaleENUS = "en-US"
)

// Translations maps locale tags to translated copies of a source-locale
// field. The zero value is usable.

type Translations map[string]string

// Resolve returns the text for the requested locale, falling back to the
// source locale. It never returns an empty string when a source value exists.
func (t Translations) Resolve(locale, source string) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	if v, ok := t[LocalePTBR]; ok && v != "" {
		return v
	}
	return source
}

// Project is a portfolio entry shown on the public site and managed from the
// admin dashboard.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug

type Project struct {
	ID                      string       `json:"id"`
	Slug                    string       `json:"slug"`
	Title                   string       `json:"title"`
	TitleTranslations       Translations `json:"title_translations,omitempty"`
	Description             string       `json:"description"`
	DescriptionTranslations Translations `json:"description_translations,omitempty"`
	CoverImagePath          string       `json:"cover_image_path,omitempty"`
	Tags                    []string     `json:"tags,omitempty"`
	DisplayOrder            int          `json:"display_order"`
	Published               bool         `json:"published"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

// Post is a blog entry.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug

type Post struct {
	ID                string       `json:"id"`
	Slug              string       `json:"slug"`
	Title             string       `json:"title"`
	TitleTranslations Translations `json:"title_translations,omitempty"`
	Body              string       `json:"body"`
	BodyTranslations  Translations `json:"body_translations,omitempty"`
	CoverImagePath    string       `json:"cover_image_path,omitempty"`
	Published         bool         `json:"published"`
	PublishedAt       *time.Time   `json:"published_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// CachedTranslation is one persisted entry of the dynamic-translation cache.
// Key is the SHA-256 of source locale, target locale and source text; the
// cache is append-only with no eviction.
//
// Storage model (DynamoDB):
//   - PK: cache_key

type CachedTranslation struct {
	Key            string    `json:"cache_key"`
	SourceLocale   string    `json:"source_locale"`
	TargetLocale   string    `json:"target_locale"`
	SourceText     string    `json:"source_text"`
	TranslatedText string    `json:"translated_text"`
	CreatedAt      time.Time `json:"created_at"`
}
