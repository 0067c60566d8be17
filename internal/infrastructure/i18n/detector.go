package i18n

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
)

var supportedLocales = []language.Tag{
	language.MustParse(entities.LocalePTBR), // first entry is the default
	language.MustParse(entities.LocaleENUS),
}

var localeMatcher = language.NewMatcher(supportedLocales)

// GeoIPDetector resolves a visitor's locale from its IP via an external
// geolocation API, falling back to Accept-Language matching. The IP lookup is
// audit/UX sugar only: any failure degrades silently to the header, and the
// header degrades to pt-BR.

type GeoIPDetector struct {
	client  *retryablehttp.Client
	baseURL string
}

var _ interfaces.ILocaleDetector = (*GeoIPDetector)(nil)

func NewGeoIPDetector(baseURL string) *GeoIPDetector {
	client := retryablehttp.NewClient()
	client.RetryMax = 1
	client.HTTPClient.Timeout = 3 * time.Second
	client.Logger = nil
	return &GeoIPDetector{client: client, baseURL: baseURL}
}

func (d *GeoIPDetector) Detect(ctx context.Context, ip, acceptLanguage string) string {
	if country := d.lookupCountry(ctx, ip); country != "" {
		if country == "BR" {
			return entities.LocalePTBR
		}
		return entities.LocaleENUS
	}
	return matchAcceptLanguage(acceptLanguage)
}

func (d *GeoIPDetector) lookupCountry(ctx context.Context, ip string) string {
	if d == nil || d.baseURL == "" || ip == "" {
		return ""
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/"+ip+"/json/", nil)
	if err != nil {
		return ""
	}
	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("[i18n][detector] geoip lookup failed ip=%s err=%v", ip, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return gjson.GetBytes(body, "country_code").String()
}

func matchAcceptLanguage(header string) string {
	if header == "" {
		return entities.LocalePTBR
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return entities.LocalePTBR
	}
	_, index, _ := localeMatcher.Match(tags...)
	if index == 1 {
		return entities.LocaleENUS
	}
	return entities.LocalePTBR
}
