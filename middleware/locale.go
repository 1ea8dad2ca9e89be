package middleware

import (
	"tablecomm/models"
	"tablecomm/preference"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Cookie names
const (
	LangCookie   = "lang"
	UILangCookie = "ui_lang"
)

// matcher order must follow models.SupportedLanguages
var matcher = language.NewMatcher([]language.Tag{
	language.Japanese,
	language.English,
	language.Spanish,
})

// NormalizeLanguage maps a BCP 47 code such as "en-US" or "es_MX" to a
// supported language
func NormalizeLanguage(code string) (models.Language, bool) {
	if lang, ok := models.ParseLanguage(code); ok {
		return lang, true
	}
	if code == "" {
		return "", false
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return "", false
	}
	return models.SupportedLanguages[index], true
}

// LocaleMiddleware resolves two languages per request.
//
// The guest display language ("lang" local) comes from the ?lang query, then
// the lang cookie, then the shared preference store. The staff UI language
// ("uiLang" and "localizer" locals) comes from the ui_lang cookie, falling back
// to uiLanguage.
func LocaleMiddleware(store *preference.Store, uiLanguage string) fiber.Handler {
	defaultUI, ok := NormalizeLanguage(uiLanguage)
	if !ok {
		defaultUI = models.DefaultLanguage
	}

	return func(c *fiber.Ctx) error {
		lang, ok := NormalizeLanguage(c.Query("lang"))
		if !ok {
			lang, ok = NormalizeLanguage(c.Cookies(LangCookie))
		}
		if !ok {
			lang = models.DefaultLanguage
			if store != nil {
				lang = store.Get()
			}
		}

		uiLang, ok := NormalizeLanguage(c.Cookies(UILangCookie))
		if !ok {
			uiLang = defaultUI
		}

		c.Locals("lang", lang)
		c.Locals("uiLang", uiLang)
		c.Locals("localizer", utils.GetLocalizer(uiLang.String()))

		utils.Log.Debug("Locale resolved: display=%s ui=%s path=%s", lang, uiLang, c.Path())

		return c.Next()
	}
}

// DisplayLanguage returns the language resolved by LocaleMiddleware
func DisplayLanguage(c *fiber.Ctx) models.Language {
	if lang, ok := c.Locals("lang").(models.Language); ok {
		return lang
	}
	return models.DefaultLanguage
}

// UILanguage returns the staff UI language resolved by LocaleMiddleware
func UILanguage(c *fiber.Ctx) models.Language {
	if lang, ok := c.Locals("uiLang").(models.Language); ok {
		return lang
	}
	return models.DefaultLanguage
}
