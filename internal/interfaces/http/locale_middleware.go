package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/pkg/config"
)

// Locals key para el locale de la petición.
const LocalLocale = "locale"

// LocaleMiddleware valida el segmento :locale de la URL contra los locales
// soportados de la tienda. Un locale desconocido es un 404 del storefront: el
// cuerpo incluye HomeURL apuntando al home en el locale negociado por
// Accept-Language (o el default si no negocia).
func LocaleMiddleware(store config.StoreConfig) fiber.Handler {
	// Matcher solo sobre los locales que parsean como BCP 47; el índice del
	// match apunta a supported.
	var supported []string
	var tags []language.Tag
	for _, l := range store.Locales {
		if tag, err := language.Parse(l); err == nil {
			supported = append(supported, l)
			tags = append(tags, tag)
		}
	}
	var matcher language.Matcher
	if len(tags) > 0 {
		matcher = language.NewMatcher(tags)
	}

	return func(c *fiber.Ctx) error {
		locale := c.Params("locale")
		for _, l := range store.Locales {
			if l == locale {
				c.Locals(LocalLocale, locale)
				return c.Next()
			}
		}

		home := store.DefaultLocale()
		if matcher != nil {
			desired, _, _ := language.ParseAcceptLanguage(c.Get("Accept-Language"))
			if _, idx, conf := matcher.Match(desired...); conf > language.No {
				home = supported[idx]
			}
		}
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "LOCALE_NOT_SUPPORTED",
			Message: "locale no soportado: " + locale,
			HomeURL: "/" + home,
		})
	}
}

// GetLocale devuelve el locale del contexto (después del middleware de locale).
func GetLocale(c *fiber.Ctx) string {
	v := c.Locals(LocalLocale)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
