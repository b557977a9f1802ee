package document

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ContentDisposition monta o cabeçalho de download. Nomes com acento ganham
// filename* (RFC 6266) e um filename ASCII equivalente.
func ContentDisposition(filename string) string {
	fallback := asciiFilename(filename)
	header := `attachment; filename="` + fallback + `"`
	if fallback != filename {
		header += "; filename*=UTF-8''" + url.PathEscape(filename)
	}
	return header
}

func asciiFilename(name string) string {
	plain, _, err := transform.String(stripMarks, name)
	if err != nil {
		plain = name
	}
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || r < 0x20 || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, plain)
}
