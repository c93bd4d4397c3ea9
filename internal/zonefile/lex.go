package zonefile

import "strings"

// stripComment removes a trailing ';' comment, leaving semicolons inside
// quoted strings intact.
func stripComment(line string) string {
	inQuotes := false
	for i, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ';' && !inQuotes:
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}

// hasUnquotedParen reports whether line opens or closes a parenthesized
// value group outside of quotes.
func hasUnquotedParen(line string) bool {
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case !inQuotes && (ch == '(' || ch == ')'):
			return true
		}
	}
	return false
}

// parenBalance returns open minus close parenthesis count outside quotes.
func parenBalance(line string) int {
	balance := 0
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case !inQuotes && ch == '(':
			balance++
		case !inQuotes && ch == ')':
			balance--
		}
	}
	return balance
}

// tokenize splits a record line into fields, keeping quoted strings (with
// their quotes) as single tokens and dropping bare parentheses.
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() == 0 {
			return
		}
		tok := current.String()
		current.Reset()
		if tok == "(" || tok == ")" {
			return
		}
		tokens = append(tokens, tok)
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			current.WriteByte(ch)
		case !inQuotes && (ch == ' ' || ch == '\t'):
			flush()
		case !inQuotes && (ch == '(' || ch == ')'):
			flush()
			// A paren glued to a token still delimits it.
		default:
			current.WriteByte(ch)
		}
	}
	flush()
	return tokens
}

// unquote strips a single pair of wrapping quotes. Multiple quoted segments
// are preserved verbatim.
func unquote(s string) string {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 && strings.Count(s, `"`) == 2 {
		return s[1 : len(s)-1]
	}
	return s
}
