package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"sync"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"
)

// ITranslationUseCase is the dynamic content-translation pipeline: persisted
// cache in front of the remote translate function, with the source text as
// unconditional fallback. A caller can never get an empty string or an error
// for a missing translation; pt-BR stays authoritative.

type ITranslationUseCase interface {
	Translate(ctx context.Context, text, sourceLocale, targetLocale string) string
	DetectLocale(ctx context.Context, ip, acceptLanguage string) string
}

type TranslationUseCase struct {
	translator interfaces.ITranslator
	cache      interfaces.ITranslationCacheRepository
	detector   interfaces.ILocaleDetector

	mu     sync.RWMutex
	memory map[string]string // read-through layer, per-process lifetime
}

var _ ITranslationUseCase = (*TranslationUseCase)(nil)

func NewTranslationUseCase(translator interfaces.ITranslator, cache interfaces.ITranslationCacheRepository, detector interfaces.ILocaleDetector) *TranslationUseCase {
	return &TranslationUseCase{
		translator: translator,
		cache:      cache,
		detector:   detector,
		memory:     make(map[string]string),
	}
}

// CacheKey is the hex SHA-256 of source locale, target locale and text.
func CacheKey(text, sourceLocale, targetLocale string) string {
	sum := sha256.Sum256([]byte(sourceLocale + "|" + targetLocale + "|" + text))
	return hex.EncodeToString(sum[:])
}

func (u *TranslationUseCase) Translate(ctx context.Context, text, sourceLocale, targetLocale string) string {
	text = strings.TrimSpace(text)
	if text == "" || sourceLocale == targetLocale || targetLocale == "" {
		return text
	}

	key := CacheKey(text, sourceLocale, targetLocale)

	u.mu.RLock()
	if v, ok := u.memory[key]; ok {
		u.mu.RUnlock()
		return v
	}
	u.mu.RUnlock()

	if cached, err := u.cache.Get(ctx, key); err != nil {
		log.Printf("[i18n][usecase] cache read failed key=%s err=%v", key, err)
	} else if cached.TranslatedText != "" {
		u.remember(key, cached.TranslatedText)
		return cached.TranslatedText
	}

	translated, err := u.translator.Translate(ctx, text, sourceLocale, targetLocale)
	if err != nil || strings.TrimSpace(translated) == "" {
		// Best-effort: the source text is always a valid answer.
		log.Printf("[i18n][usecase] translate failed source=%s target=%s err=%v", sourceLocale, targetLocale, err)
		return text
	}

	entry := entities.CachedTranslation{
		Key:            key,
		SourceLocale:   sourceLocale,
		TargetLocale:   targetLocale,
		SourceText:     text,
		TranslatedText: translated,
		CreatedAt:      time.Now().UTC(),
	}
	if err := u.cache.Put(ctx, entry); err != nil {
		log.Printf("[i18n][usecase] cache write failed key=%s err=%v", key, err)
	}
	u.remember(key, translated)
	return translated
}

func (u *TranslationUseCase) DetectLocale(ctx context.Context, ip, acceptLanguage string) string {
	return u.detector.Detect(ctx, ip, acceptLanguage)
}

func (u *TranslationUseCase) remember(key, value string) {
	u.mu.Lock()
	u.memory[key] = value
	u.mu.Unlock()
}
