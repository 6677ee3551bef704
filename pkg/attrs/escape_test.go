package attrs

import "testing"

func TestEscapeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "ampersand",
			input:    "Tom & Jerry",
			expected: "Tom &amp; Jerry",
		},
		{
			name:     "angle brackets",
			input:    "a < b > c",
			expected: "a &lt; b &gt; c",
		},
		{
			name:     "double quote",
			input:    `say "hello"`,
			expected: "say &quot;hello&quot;",
		},
		{
			name:     "single quote",
			input:    "it's fine",
			expected: "it&#039;s fine",
		},
		{
			name:     "already escaped entity is escaped again",
			input:    "&amp;",
			expected: "&amp;amp;",
		},
		{
			name:     "attribute breakout",
			input:    `x" onclick="alert('xss')`,
			expected: "x&quot; onclick=&quot;alert(&#039;xss&#039;)",
		},
		{
			name:     "whitespace untouched",
			input:    "a\tb\nc",
			expected: "a\tb\nc",
		},
		{
			name:     "unicode preserved",
			input:    "Hello 世界 🌍",
			expected: "Hello 世界 🌍",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeValue(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeValue(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
