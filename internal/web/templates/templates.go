// Package templates embute as páginas HTML da interface web.
package templates

import "embed"

//go:embed *.html partials/*.html
var FS embed.FS
