package markup

import "github.com/microcosm-cc/bluemonday"

// fragmentPolicy allows exactly the tags Render emits. It is a second fence
// at the HTTP boundary; for fragments produced by Render it is a no-op.
var fragmentPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "em", "br", "code")
	p.AllowAttrs("class").OnElements("code")
	return p
}()

// Sanitize strips anything outside the rendered fragment vocabulary.
func Sanitize(fragment string) string {
	return fragmentPolicy.Sanitize(fragment)
}
