// Package i18n holds the storefront's string tables and resolves the
// caller's language.
package i18n

import (
	"embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	Indonesian = "id"
	English    = "en"

	// CookieName stores the preferred language between visits.
	CookieName = "language"
	// QueryParam overrides every other source for a single request.
	QueryParam = "lang"

	contextKey = "language"
	cookieTTL  = 365 * 24 * time.Hour
)

//go:embed locales/*.yaml
var locales embed.FS

var supported = []language.Tag{language.Indonesian, language.English}

// Translator looks up strings by language and key.
type Translator struct {
	tables   map[string]map[string]string
	fallback string
	matcher  language.Matcher
}

// New loads the embedded tables. defaultLang must be "id" or "en".
func New(defaultLang string) (*Translator, error) {
	lang, ok := Normalize(defaultLang)
	if !ok {
		return nil, fmt.Errorf("unsupported default language %q", defaultLang)
	}
	tr := &Translator{
		tables:   make(map[string]map[string]string),
		fallback: lang,
		matcher:  language.NewMatcher(supported),
	}
	for _, code := range []string{Indonesian, English} {
		raw, err := locales.ReadFile("locales/" + code + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read %s table: %w", code, err)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse %s table: %w", code, err)
		}
		tr.tables[code] = table
	}
	return tr, nil
}

// Normalize maps a user supplied code onto a supported language.
func Normalize(lang string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case Indonesian:
		return Indonesian, true
	case English:
		return English, true
	}
	return "", false
}

// Default is the language used when the caller expresses no preference.
func (t *Translator) Default() string { return t.fallback }

// T returns the string for key, or key itself when it is missing.
func (t *Translator) T(lang, key string) string {
	if v, ok := t.tables[lang][key]; ok {
		return v
	}
	return key
}

// Resolve picks the language from, in order, the query parameter, the
// cookie and the Accept-Language header.
func (t *Translator) Resolve(query, cookie, acceptLanguage string) string {
	if lang, ok := Normalize(query); ok {
		return lang
	}
	if lang, ok := Normalize(cookie); ok {
		return lang
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := t.matcher.Match(tags...)
			if conf != language.No {
				base, _ := supported[idx].Base()
				return base.String()
			}
		}
	}
	return t.fallback
}

// Middleware stores the resolved language in the gin context.
func (t *Translator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(CookieName)
		c.Set(contextKey, t.Resolve(c.Query(QueryParam), cookie, c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// Language returns the language chosen by Middleware.
func (t *Translator) Language(c *gin.Context) string {
	if lang := c.GetString(contextKey); lang != "" {
		return lang
	}
	return t.fallback
}

// Msg translates key into the request's language.
func (t *Translator) Msg(c *gin.Context, key string) string {
	return t.T(t.Language(c), key)
}

// Remember persists lang in a long-lived cookie.
func Remember(c *gin.Context, lang string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, lang, int(cookieTTL.Seconds()), "/", "", false, false)
}
