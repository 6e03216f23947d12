package mathexpr

// Extract returns the longest contiguous run of expression characters
// (digits, '.', '+', '-', '*', '/', '(', ')') in text that contains at least
// one digit. Ties go to the earliest run. ok is false when no such run exists.
func Extract(text string) (expr string, ok bool) {
	bestStart, bestLen := -1, 0
	start, hasDigit := -1, false

	flush := func(end int) {
		if start >= 0 && hasDigit && end-start > bestLen {
			bestStart, bestLen = start, end-start
		}
		start, hasDigit = -1, false
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if !isExprChar(ch) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if isDigit(ch) {
			hasDigit = true
		}
	}
	flush(len(text))

	if bestStart < 0 {
		return "", false
	}
	return text[bestStart : bestStart+bestLen], true
}

func isExprChar(ch byte) bool {
	if isDigit(ch) {
		return true
	}
	switch ch {
	case '.', '+', '-', '*', '/', '(', ')':
		return true
	}
	return false
}
