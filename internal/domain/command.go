package domain

import (
	"fmt"
	"strings"
)

// CommandLine is the ordered argument vector for the renderer process. The
// first token is the executable path. Never mutated after compilation;
// regenerate instead of patching.
type CommandLine []string

// String renders the command as a single shell-invocable line. Re-splitting
// the result with SplitCommand reproduces the identical token sequence.
func (c CommandLine) String() string {
	quoted := make([]string, len(c))
	for i, tok := range c {
		quoted[i] = QuoteToken(tok)
	}
	return strings.Join(quoted, " ")
}

// safeToken holds runes that need no quoting in POSIX shells.
func safeToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("_-+=%@:,./", r):
		default:
			return false
		}
	}
	return true
}

// QuoteToken single-quotes a token when it contains shell-special
// characters. An embedded single quote closes the quote, emits an escaped
// quote and reopens.
func QuoteToken(s string) string {
	if safeToken(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// SplitCommand is the inverse of CommandLine.String: it tokenizes a saved
// command line following POSIX quoting rules (single quotes, double quotes,
// backslash escapes outside quotes).
func SplitCommand(line string) (CommandLine, error) {
	var (
		tokens  CommandLine
		current strings.Builder
		inToken bool
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case ' ', '\t', '\n':
			flush()

		case '\\':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("split command: trailing backslash")
			}
			i++
			current.WriteRune(runes[i])
			inToken = true

		case '\'':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '\'' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("split command: unterminated single quote")
			}
			current.WriteString(string(runes[i+1 : end]))
			inToken = true
			i = end

		case '"':
			end := -1
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '\\' {
					j++
					continue
				}
				if runes[j] == '"' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("split command: unterminated double quote")
			}
			for j := i + 1; j < end; j++ {
				if runes[j] == '\\' && j+1 < end && (runes[j+1] == '"' || runes[j+1] == '\\') {
					j++
				}
				current.WriteRune(runes[j])
			}
			inToken = true
			i = end

		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()

	return tokens, nil
}
