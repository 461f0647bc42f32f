package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New("id")
	require.NoError(t, err)
	return tr
}

func TestNew_RejectsUnknownDefault(t *testing.T) {
	_, err := New("fr")
	assert.Error(t, err)
}

func TestTablesHaveSameKeys(t *testing.T) {
	tr := newTranslator(t)
	for key := range tr.tables[Indonesian] {
		assert.Contains(t, tr.tables[English], key)
	}
	for key := range tr.tables[English] {
		assert.Contains(t, tr.tables[Indonesian], key)
	}
}

func TestT(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, "Terjadi kesalahan", tr.T("id", "common.error"))
	assert.Equal(t, "An error occurred", tr.T("en", "common.error"))
	assert.Equal(t, "no.such.key", tr.T("en", "no.such.key"))
	assert.Equal(t, "common.error", tr.T("fr", "common.error"))
}

func TestResolve(t *testing.T) {
	tr := newTranslator(t)
	assert.Equal(t, "en", tr.Resolve("en", "id", "id-ID"))
	assert.Equal(t, "en", tr.Resolve("", "en", "id-ID"))
	assert.Equal(t, "en", tr.Resolve("xx", "", "en-US,en;q=0.9"))
	assert.Equal(t, "id", tr.Resolve("", "", "id-ID,id;q=0.9,en;q=0.5"))
	assert.Equal(t, "id", tr.Resolve("", "", "ja-JP"))
	assert.Equal(t, "id", tr.Resolve("", "", ""))
}

func TestMiddlewareAndRemember(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tr := newTranslator(t)

	r := gin.New()
	r.Use(tr.Middleware())
	r.GET("/msg", func(c *gin.Context) {
		c.String(http.StatusOK, tr.Msg(c, "auth.signedOut"))
	})
	r.PUT("/lang", func(c *gin.Context) {
		Remember(c, "en")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/msg", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "en"})
	r.ServeHTTP(w, req)
	assert.Equal(t, "Signed out", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/msg", nil))
	assert.Equal(t, "Berhasil keluar", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/lang", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "en", cookies[0].Value)
}
