// Package slug deriva y normaliza identificadores de URL para el catálogo.
//
// Dos operaciones distintas conviven aquí:
//   - FromName: deriva un slug desde el nombre visible de una entidad cuando la fila
//     no trae slug almacenado (el derivado nunca se persiste, se calcula en lectura).
//   - NormalizeSegment: prepara un segmento de path entrante (URL-decode + lowercase)
//     para compararlo contra slugs almacenados o derivados.
package slug

import (
	"net/url"
	"strings"
	"unicode"
)

// FromName deriva un slug a partir de un nombre visible: minúsculas, espacios y
// guiones bajos a guion, se conservan letras (incluidas acentuadas) y dígitos,
// el resto se descarta y los guiones repetidos se colapsan.
func FromName(name string) string {
	var b strings.Builder
	prevDash := true // evita guion inicial
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '_' || r == '-' || r == '/':
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// NormalizeSegment decodifica un segmento de URL y lo pasa a minúsculas para
// comparación. Si el decode falla (percent-encoding malformado) se usa el
// segmento crudo en lugar de rechazar la petición.
func NormalizeSegment(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		decoded = segment
	}
	return strings.ToLower(strings.TrimSpace(decoded))
}

// Matches compara un segmento entrante contra un slug almacenado o derivado,
// ambos bajo la misma normalización.
func Matches(segment, stored string) bool {
	if stored == "" {
		return false
	}
	return NormalizeSegment(segment) == strings.ToLower(stored)
}
