package rewriter

import "testing"

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no comment", `let x = 1;`, `let x = 1;`},
		{"trailing comment", `let x = 1; // set x`, `let x = 1; `},
		{"comment inside double quotes is not stripped", `let s = "http://example.com";`, `let s = "http://example.com";`},
		{"comment inside single quotes is not stripped", `let c = '//';`, `let c = '//';`},
		{"comment after a string literal", `let s = "a"; // trailing`, `let s = "a"; `},
		{"whole line comment", `// nothing here`, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripComments([]string{tt.in})
			if got[0] != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.in, got[0], tt.want)
			}
		})
	}
}
