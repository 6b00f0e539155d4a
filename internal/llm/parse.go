package llm

// extractJSON finds the first complete brace-delimited JSON object in
// a string, handling nested braces and braces inside quoted strings.
// Returns "" when no object is found.
//
// Models asked for bare JSON still sometimes wrap it in prose; this is
// the recovery path before giving up on a response.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
