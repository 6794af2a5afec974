package env

import (
	"os"
	"regexp"
	"strings"

	"github.com/abdul-hamid-achik/requeasy/packages/builtin"
)

var variablePattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// WarnFunc receives a message for every placeholder left unresolved.
type WarnFunc func(format string, args ...any)

// Resolver expands {{name}} placeholders in URLs, bodies and header lines.
//
//	{{name}}         a variable set on the resolver (e.g. from --env-file)
//	{{$NAME}}        the process environment variable NAME
//	{{fn(args)}}     a function from package builtin, e.g. uuid() or timestamp()
//
// Unresolved placeholders are left in place.
type Resolver struct {
	variables map[string]string
	warnFunc  WarnFunc
	funcs     *builtin.Registry
}

func NewResolver() *Resolver {
	r := &Resolver{
		variables: make(map[string]string),
	}
	r.funcs = builtin.NewRegistry(builtin.WithWarnFunc(r.warn))
	return r
}

func (r *Resolver) SetWarnFunc(fn WarnFunc) {
	r.warnFunc = fn
}

func (r *Resolver) warn(format string, args ...any) {
	if r.warnFunc != nil {
		r.warnFunc(format, args...)
	}
}

func (r *Resolver) SetVariables(vars map[string]string) {
	for k, v := range vars {
		r.variables[k] = v
	}
}

func (r *Resolver) SetVariable(name, value string) {
	r.variables[name] = value
}

func (r *Resolver) Resolve(input string) string {
	return variablePattern.ReplaceAllStringFunc(input, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-2])

		if name, ok := strings.CutPrefix(expr, "$"); ok {
			if val, set := os.LookupEnv(name); set {
				return val
			}
			r.warn("unresolved environment variable: $%s", name)
			return match
		}

		if val, ok := r.funcs.Call(expr); ok {
			return val
		}

		if val, ok := r.variables[expr]; ok {
			return val
		}
		r.warn("unresolved variable: %s", expr)
		return match
	})
}

// ResolveAll resolves every element of lines into a new slice.
func (r *Resolver) ResolveAll(lines []string) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = r.Resolve(line)
	}
	return out
}

// HasUnresolved reports whether input still contains a placeholder.
func HasUnresolved(input string) bool {
	return variablePattern.MatchString(input)
}
