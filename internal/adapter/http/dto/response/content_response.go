package response

import (
	"time"

	"portfolio_studio/internal/domain/entities"
)

type ProjectResponse struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	CoverImagePath string    `json:"cover_image_path,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	DisplayOrder   int       `json:"display_order"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FromProject localizes the translatable fields for the given locale. Pass
// the source locale to get the authoritative text.
func FromProject(p entities.Project, locale string) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Slug:           p.Slug,
		Title:          p.TitleTranslations.Resolve(locale, p.Title),
		Description:    p.DescriptionTranslations.Resolve(locale, p.Description),
		CoverImagePath: p.CoverImagePath,
		Tags:           p.Tags,
		DisplayOrder:   p.DisplayOrder,
		Published:      p.Published,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project, locale string) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p, locale))
	}
	return out
}

type PostResponse struct {
	ID             string     `json:"id"`
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Body           string     `json:"body,omitempty"`
	CoverImagePath string     `json:"cover_image_path,omitempty"`
	Published      bool       `json:"published"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromPost(p entities.Post, locale string) PostResponse {
	return PostResponse{
		ID:             p.ID,
		Slug:           p.Slug,
		Title:          p.TitleTranslations.Resolve(locale, p.Title),
		Body:           p.BodyTranslations.Resolve(locale, p.Body),
		CoverImagePath: p.CoverImagePath,
		Published:      p.Published,
		PublishedAt:    p.PublishedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromPosts(ps []entities.Post, locale string) []PostResponse {
	out := make([]PostResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPost(p, locale))
	}
	return out
}

type TranslateResponse struct {
	Text         string `json:"text"`
	SourceLocale string `json:"source_locale"`
	TargetLocale string `json:"target_locale"`
}

type LocaleResponse struct {
	Locale string `json:"locale"`
}
