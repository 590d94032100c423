package collect

import (
	"regexp"
	"strings"
)

// translateGlob converts a shell-style glob pattern into a regular expression
// fragment. `*` matches any run of characters including path separators, `?`
// matches a single character, and `[seq]` / `[!seq]` are character classes.
// An unterminated `[` is treated as a literal bracket.
func translateGlob(pattern string) string {
	var b strings.Builder
	i, n := 0, len(pattern)

	for i < n {
		c := pattern[i]
		i++
		switch c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i
			if j < n && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			// A ']' immediately after the (possibly negated) opening bracket
			// is part of the class, not its terminator.
			if j < n && pattern[j] == ']' {
				j++
			}
			for j < n && pattern[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			set := strings.ReplaceAll(pattern[i:j], `\`, `\\`)
			b.WriteString("[")
			switch {
			case strings.HasPrefix(set, "!"):
				b.WriteString("^")
				b.WriteString(set[1:])
			case strings.HasPrefix(set, "^"):
				b.WriteString(`\^`)
				b.WriteString(set[1:])
			default:
				b.WriteString(set)
			}
			b.WriteString("]")
			i = j + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	return b.String()
}

// compileGlob compiles a glob pattern into an anchored regular expression
// that must match a candidate string in its entirety.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("^" + translateGlob(pattern) + "$")
}
