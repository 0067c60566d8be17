package request

type ProjectRequest struct {
	Title                   string            `json:"title" binding:"required"`
	Slug                    string            `json:"slug"`
	TitleTranslations       map[string]string `json:"title_translations"`
	Description             string            `json:"description"`
	DescriptionTranslations map[string]string `json:"description_translations"`
	CoverImagePath          string            `json:"cover_image_path"`
	Tags                    []string          `json:"tags"`
	Published               bool              `json:"published"`
}

type PostRequest struct {
	Title             string            `json:"title" binding:"required"`
	Slug              string            `json:"slug"`
	TitleTranslations map[string]string `json:"title_translations"`
	Body              string            `json:"body"`
	BodyTranslations  map[string]string `json:"body_translations"`
	CoverImagePath    string            `json:"cover_image_path"`
	Published         bool              `json:"published"`
}

// ReorderRequest carries the full ordered id list for a display surface.
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

type TranslateRequest struct {
	Text         string `json:"text" binding:"required"`
	SourceLocale string `json:"source_locale"`
	TargetLocale string `json:"target_locale" binding:"required"`
}
