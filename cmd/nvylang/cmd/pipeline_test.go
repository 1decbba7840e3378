package cmd

import (
	"strings"
	"testing"
)

func TestCompileUnit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContain string
		wantErr     bool
	}{
		{
			name:        "empty function",
			input:       "func main() -> void {\n  return;\n}\n",
			wantContain: "func main",
		},
		{
			name:        "vardef and return",
			input:       "func main() -> int32 {\n  let x = 1 + 2;\n  return x;\n}\n",
			wantContain: "add",
		},
		{
			name:        "unterminated string",
			input:       "func main() -> void {\n  let s = \"oops;\n  return;\n}\n",
			wantErr:     true,
		},
		{
			name:        "unknown statement kind",
			input:       "@@@;\n",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ir, err := compileUnit("", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got IR: %s", ir)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantContain != "" && !strings.Contains(ir, tt.wantContain) {
				t.Fatalf("expected output to contain %q, got:\n%s", tt.wantContain, ir)
			}
		})
	}
}

func TestModuleNameFor(t *testing.T) {
	tests := []struct{ path, want string }{
		{"prog.nvy", "prog"},
		{"/a/b/prog.nvy", "prog"},
		{"<eval>", "<eval>"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := moduleNameFor(tt.path); got != tt.want {
			t.Errorf("moduleNameFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
