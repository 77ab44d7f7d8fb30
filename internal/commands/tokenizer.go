package commands

import (
	"strings"
	"unicode"
)

// SplitQuoted splits s on whitespace. Single quotes keep everything up to the
// next single quote literally; double quotes allow \" and \\ escapes. Quoted
// and unquoted runs that touch are joined into one token, so `a"b c"` is "ab c".
func SplitQuoted(s string) ([]string, error) {
	tokens := make([]string, 0)

	var (
		current  strings.Builder
		inToken  bool
		quote    rune
		escaping bool
	)

	for _, r := range s {
		switch {
		case escaping:
			// Inside double quotes only the quote and backslash are escapable.
			if quote == '"' && r != '"' && r != '\\' {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaping = false

		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				current.WriteRune(r)
			}

		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaping = true
			default:
				current.WriteRune(r)
			}

		case r == '\'' || r == '"':
			quote = r
			inToken = true

		case r == '\\':
			escaping = true
			inToken = true

		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}

		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}

	if escaping {
		current.WriteRune('\\')
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

// SplitFields is the plain whitespace split used where quoting is not needed.
func SplitFields(s string) []string {
	return strings.Fields(s)
}
