// Package normalize unifica identificadores y textos que llegan con
// tildes, mayúsculas inconsistentes o prefijos manuales desde las
// distintas fuentes de datos.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks descompone a NFD y elimina las marcas diacríticas, de
// modo que "MÉXICO" y "MEXICO" comparen igual.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// adIDPrefix reconoce el prefijo manual que algunos vendedores anotan
// delante del ID numérico: "Ads-123", "ads 123", "ADS_123".
var adIDPrefix = regexp.MustCompile(`(?i)^ads[\s\-_]*`)

// Text normaliza un texto libre: sin tildes, en mayúsculas y sin
// espacios en los extremos.
func Text(s string) string {
	clean, _, err := transform.String(stripMarks, s)
	if err != nil {
		clean = s
	}
	return strings.ToUpper(strings.TrimSpace(clean))
}

// AdID lleva cualquier variante anotada de un ID de anuncio a su forma
// canónica. Si al quitar el prefijo no queda nada, conserva el valor
// original recortado. La función es idempotente.
func AdID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Se quita el prefijo hasta punto fijo: "ADS-ADS-5" y "ADS-5"
	// deben terminar en el mismo canónico.
	canonical := trimmed
	for {
		next := strings.TrimSpace(adIDPrefix.ReplaceAllString(canonical, ""))
		if next == canonical || next == "" {
			if next == "" {
				return canonical
			}
			canonical = next
			break
		}
		canonical = next
	}

	return canonical
}
