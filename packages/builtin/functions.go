package builtin

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"math/rand"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Func computes a placeholder value from its arguments.
type Func func(args []string) string

// WarnFunc receives a message when an argument cannot be used.
type WarnFunc func(format string, args ...any)

type Registry struct {
	funcs map[string]Func
	now   func() time.Time
	warn  WarnFunc
}

type Option func(*Registry)

// WithClock replaces time.Now for the time-based functions.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func WithWarnFunc(fn WarnFunc) Option {
	return func(r *Registry) {
		r.warn = fn
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		funcs: make(map[string]Func),
		now:   time.Now,
		warn:  func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerDefaults()
	return r
}

func (r *Registry) registerDefaults() {
	r.funcs["uuid"] = func([]string) string { return uuid.NewString() }
	r.funcs["timestamp"] = func([]string) string { return strconv.FormatInt(r.now().Unix(), 10) }
	r.funcs["timestampMs"] = func([]string) string { return strconv.FormatInt(r.now().UnixMilli(), 10) }
	r.funcs["now"] = func([]string) string { return r.now().UTC().Format(time.RFC3339) }
	r.funcs["date"] = r.date
	r.funcs["random"] = r.random
	r.funcs["randomString"] = r.randomString
	r.funcs["base64"] = firstArg(func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) })
	r.funcs["urlEncode"] = firstArg(url.QueryEscape)
	r.funcs["sha256"] = firstArg(func(s string) string {
		sum := sha256.Sum256([]byte(s))
		return hex.EncodeToString(sum[:])
	})
}

func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

var funcCallPattern = regexp.MustCompile(`^(\w+)\((.*)\)$`)

// Call evaluates expr of the form name(arg, ...). It reports false when
// expr is not a call or names an unknown function.
func (r *Registry) Call(expr string) (string, bool) {
	matches := funcCallPattern.FindStringSubmatch(expr)
	if matches == nil {
		return "", false
	}

	fn, ok := r.funcs[matches[1]]
	if !ok {
		return "", false
	}
	return fn(parseArgs(matches[2])), true
}

func parseArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !inQuote && (ch == '"' || ch == '\'') {
			inQuote = true
			quoteChar = ch
		} else if inQuote && ch == quoteChar {
			inQuote = false
			quoteChar = 0
		} else if !inQuote && ch == ',' {
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		} else {
			current.WriteByte(ch)
		}
	}

	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}

	return args
}

func firstArg(fn func(string) string) Func {
	return func(args []string) string {
		if len(args) < 1 {
			return ""
		}
		return fn(args[0])
	}
}

func (r *Registry) date(args []string) string {
	layout := "2006-01-02"
	if len(args) >= 1 {
		layout = args[0]
	}
	return r.now().UTC().Format(layout)
}

func (r *Registry) random(args []string) string {
	min, max := 0, 100
	if len(args) >= 2 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			min = v
		} else {
			r.warn("random() min argument %q is not a valid integer", args[0])
		}
		if v, err := strconv.Atoi(args[1]); err == nil {
			max = v
		} else {
			r.warn("random() max argument %q is not a valid integer", args[1])
		}
	}
	if max < min {
		min, max = max, min
	}
	return strconv.Itoa(rand.Intn(max-min+1) + min)
}

func (r *Registry) randomString(args []string) string {
	length := 16
	if len(args) >= 1 {
		if v, err := strconv.Atoi(args[0]); err == nil && v >= 0 {
			length = v
		} else {
			r.warn("randomString() length argument %q is not a valid integer", args[0])
		}
	}
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
