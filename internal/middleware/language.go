package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/i18n"
)

// LanguageCookie stores an explicit language choice.
const LanguageCookie = "lang"

const translatorKey = "translator"

// Language picks the request language from the lang query parameter, the
// lang cookie and then Accept-Language.
func Language(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		preferred := c.Query("lang")
		if preferred == "" {
			preferred, _ = c.Cookie(LanguageCookie)
		}
		t := bundle.Negotiate(preferred, c.GetHeader("Accept-Language"))
		c.Set(translatorKey, t)
		c.Header("Content-Language", t.Lang())
		c.Next()
	}
}

// GetTranslator returns the translator chosen by Language.
func GetTranslator(c *gin.Context) *i18n.Translator {
	t, _ := c.MustGet(translatorKey).(*i18n.Translator)
	return t
}
