package i18n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"portfolio_studio/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

var ErrTranslatorNotConfigured = errors.New("translator not configured")

// HTTPTranslator calls the external translation function. The function takes
// a LibreTranslate-shaped payload (q/source/target) and answers with
// translatedText; locale tags are reduced to their language code on the way
// out (pt-BR -> pt).

type HTTPTranslator struct {
	client *retryablehttp.Client
	url    string
	apiKey string
}

var _ interfaces.ITranslator = (*HTTPTranslator)(nil)

func NewHTTPTranslator(url, apiKey string) *HTTPTranslator {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = 15 * time.Second
	client.Logger = nil
	return &HTTPTranslator{client: client, url: url, apiKey: apiKey}
}

func (t *HTTPTranslator) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (string, error) {
	if t == nil || t.url == "" {
		return "", ErrTranslatorNotConfigured
	}

	payload, err := json.Marshal(map[string]string{
		"q":       text,
		"source":  languageCode(sourceLocale),
		"target":  languageCode(targetLocale),
		"format":  "text",
		"api_key": t.apiKey,
	})
	if err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[i18n][translator] non-200 status=%d body_len=%d", resp.StatusCode, len(body))
		return "", fmt.Errorf("translate function returned status %d", resp.StatusCode)
	}

	translated := gjson.GetBytes(body, "translatedText").String()
	if translated == "" {
		return "", fmt.Errorf("translate function returned empty translation")
	}
	return translated, nil
}

// languageCode reduces a locale tag to the language portion expected by the
// translation function.
func languageCode(locale string) string {
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
