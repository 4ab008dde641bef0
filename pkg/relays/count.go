package relays

// CountRecords estimates the number of endpoint records in text without parsing it.
// Each closing quote counts as a record if at least one '/' was seen since the last counted quote.
// This matches quoted URLs, but will also count plain strings with stray slashes, and miscounts escaped quotes.
func CountRecords(text string) int {
	var count, slashes int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '/':
			slashes++
		case '"':
			if slashes > 0 {
				count++
				slashes = 0
			}
		}
	}
	return count
}
