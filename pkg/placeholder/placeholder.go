package placeholder

import "regexp"

// ReadyAPI property expansions: ${#Scope#name}, ${#name} or ${name}.
// A scope only counts when its closing "#" is present.
var expansion = regexp.MustCompile(`\$\{#?(?:[A-Za-z]*#)?([A-Za-z0-9_]+)\}`)

// Convert rewrites every ReadyAPI property expansion in text to the JMeter
// form ${name}. Scope qualifiers are dropped; anything that does not look
// like an expansion is left as is.
func Convert(text string) string {
	if text == "" {
		return ""
	}
	return expansion.ReplaceAllString(text, "$${${1}}")
}
