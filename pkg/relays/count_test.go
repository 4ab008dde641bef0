package relays

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountRecords(t *testing.T) {
	tests := map[string]struct {
		text     string
		expected int
	}{
		"Empty":               {text: "", expected: 0},
		"Empty quotes":        {text: `""`, expected: 0},
		"Mixed strings":       {text: `"a/b" "c" "d/e/f"`, expected: 2},
		"Relay list":          {text: `{"relays":["a/1","b/2","c/3"]}`, expected: 3},
		"URLs":                {text: `["https://relay.example.com/a","wss://b.example.com"]`, expected: 2},
		"Slash outside quote": {text: `/"plain"`, expected: 1},
		"No quotes":           {text: "a/b/c", expected: 0},
		"Escaped quote":       {text: `"a/\"b"`, expected: 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CountRecords(tc.text))
		})
	}
}
