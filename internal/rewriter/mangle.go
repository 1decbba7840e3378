package rewriter

import (
	"fmt"
	"strings"
)

// ModuleContext carries the mangled-name bookkeeping for one
// compilation unit. Deliberately kept off a process-global: a shared
// global map across units is a concurrency and cross-unit-leak
// hazard, so the driver owns one ModuleContext per unit and threads it
// into both the rewriter and the emitter.
type ModuleContext struct {
	Module string

	// byName maps an original function name to its mangled form.
	byName map[string]string
	// byQualifiedName maps "module_originalName" to its mangled form.
	byQualifiedName map[string]string
	// Collisions records a warning for every name mangled more than once.
	Collisions []string
}

func NewModuleContext(module string) *ModuleContext {
	return &ModuleContext{
		Module:          module,
		byName:          make(map[string]string),
		byQualifiedName: make(map[string]string),
	}
}

// MangledName returns the mangled form previously recorded for name, or
// ("", false) if the name was never declared in this unit.
func (m *ModuleContext) MangledName(name string) (string, bool) {
	n, ok := m.byName[name]
	return n, ok
}

// sanitizeModule strips everything but letters/digits from the module
// name.
func sanitizeModule(module string) string {
	var sb strings.Builder
	for _, r := range module {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// mangledName computes `_nvylang_{module}_{N}{name}_{L}`. "main" is
// never mangled.
func mangledName(module, name string) string {
	if name == "main" {
		return "main"
	}
	sanitized := sanitizeModule(module)
	return fmt.Sprintf("_nvylang_%s_%d%s_%d", sanitized, len(name), name, len(module))
}

// MangleFunctionNames rewrites every `func NAME` line, records the
// mapping on ctx, and returns the rewritten lines. A name declared more
// than once within the unit is recorded as a collision warning rather
// than treated as fatal here; redeclaration is only a hard error once
// Symbol Storage sees it at emission time.
func MangleFunctionNames(lines []string, ctx *ModuleContext) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, "func ") {
			out[i] = line
			continue
		}

		indent := line[:len(line)-len(trimmed)]
		rest := strings.TrimPrefix(trimmed, "func ")
		rest = strings.TrimLeft(rest, " \t")

		name, tail := splitIdentifier(rest)
		if name == "" {
			out[i] = line
			continue
		}

		mangled := mangledName(ctx.Module, name)
		if _, exists := ctx.byName[name]; exists {
			ctx.Collisions = append(ctx.Collisions,
				fmt.Sprintf("duplicate function name %q in module %q", name, ctx.Module))
		}
		ctx.byName[name] = mangled
		ctx.byQualifiedName[ctx.Module+"_"+name] = mangled

		out[i] = indent + "func " + mangled + tail
	}
	return out
}

func splitIdentifier(s string) (name, rest string) {
	j := 0
	for j < len(s) && isIdentByte(s[j]) {
		j++
	}
	return s[:j], s[j:]
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
