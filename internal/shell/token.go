package shell

import (
	"strings"

	"smash/pkg/cerr"
)

// Tokenize splits line into whitespace-separated tokens. Inside '...'
// or "..." runs, bytes (including whitespace) are literal and the
// quotes are stripped from the resulting token; no escape processing
// is performed. An unquoted run of one or two '&' characters becomes
// its own token ("&" or "&&") even when not surrounded by whitespace,
// since they're the only metacharacters this shell recognizes. A run
// of three or more '&', or an unterminated quote, is a parse error.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	haveCur := false

	flush := func() {
		if haveCur {
			tokens = append(tokens, cur.String())
			cur.Reset()
			haveCur = false
		}
	}

	runes := []rune(line)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
			i++
		case r == '\'' || r == '"':
			quote := r
			j := i + 1
			for j < len(runes) && runes[j] != quote {
				j++
			}
			if j >= len(runes) {
				return nil, cerr.New(cerr.Parse, "", "invalid arguments", nil)
			}
			cur.WriteString(string(runes[i+1 : j]))
			haveCur = true
			i = j + 1
		case r == '&':
			flush()
			j := i
			for j < len(runes) && runes[j] == '&' {
				j++
			}
			n := j - i
			if n > 2 {
				return nil, cerr.New(cerr.Parse, "", "invalid arguments", nil)
			}
			tokens = append(tokens, strings.Repeat("&", n))
			i = j
		default:
			cur.WriteRune(r)
			haveCur = true
			i++
		}
	}
	flush()
	return tokens, nil
}
