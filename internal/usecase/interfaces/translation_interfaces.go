package interfaces

import (
	"context"

	"portfolio_studio/internal/domain/entities"
)

// ITranslator abstracts the remote translation function.

type ITranslator interface {
	Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error)
}

// ITranslationCacheRepository persists computed translations. Append-only,
// no eviction; keys are content hashes of (source, target, text).

type ITranslationCacheRepository interface {
	Get(ctx context.Context, key string) (entities.CachedTranslation, error)
	Put(ctx context.Context, t entities.CachedTranslation) error
}

// ILocaleDetector resolves the locale for an incoming visitor from its IP
// (geolocation, best-effort) and Accept-Language header.

type ILocaleDetector interface {
	Detect(ctx context.Context, ip, acceptLanguage string) string
}
