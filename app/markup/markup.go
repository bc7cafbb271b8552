// Package markup renders the restricted inline markup used in post bodies
// into a safe HTML fragment. The dialect is tiny on purpose: bold, italic,
// inline code, and line breaks.
package markup

import (
	"regexp"
	"strings"
)

var (
	escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.+?)\*`)
	codeRe   = regexp.MustCompile("`(.+?)`")
)

// Render transforms markup into an HTML fragment. Escaping runs before any
// marker substitution so author input can never smuggle raw HTML through.
// Unmatched markers are left as literal characters. The function is pure:
// identical input always yields byte-identical output.
func Render(src string) string {
	html := escaper.Replace(src)
	html = boldRe.ReplaceAllString(html, "<strong>$1</strong>")
	html = italicRe.ReplaceAllString(html, "<em>$1</em>")
	html = codeRe.ReplaceAllString(html, `<code class="inline-code">$1</code>`)
	return strings.ReplaceAll(html, "\n", "<br/>")
}
