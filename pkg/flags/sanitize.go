// pkg/flags/sanitize.go
package flags

import "strings"

// DefaultDenylist holds flags from V8's own build that break or over-constrain
// code compiled against it
var DefaultDenylist = []string{
	"-Werror",
	"-fno-exceptions",
	"-Wunused-variable",
	"-DV8_DEPRECATION_WARNINGS",
	"-Wl,-z,defs",
}

// Sanitizer strips denylisted tokens from flag strings
type Sanitizer struct {
	Denylist []string
}

// Sanitize strips DefaultDenylist from s
func Sanitize(s string) string {
	return Sanitizer{Denylist: DefaultDenylist}.Sanitize(s)
}

// Sanitize removes every occurrence of each denylisted token, together with
// the space separating it from the previous token. Occurrences glued to
// other text are removed too, and removal repeats until nothing matches.
func (z Sanitizer) Sanitize(s string) string {
	// A leading space lets a token at the very start match like any other.
	out := " " + s
	for {
		prev := out
		for _, tok := range z.Denylist {
			if tok != "" {
				out = strings.ReplaceAll(out, " "+tok, "")
			}
		}
		if out != prev {
			continue
		}
		for _, tok := range z.Denylist {
			if tok != "" {
				out = strings.ReplaceAll(out, tok, "")
			}
		}
		if out == prev {
			break
		}
	}
	return strings.TrimPrefix(out, " ")
}
