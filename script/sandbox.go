// Package script embeds the restricted Lua interpreter behind user-authored
// code: per-scene lifecycle hooks (runner.go) and the custom transformer
// variant's evaluation context. The sandbox is best effort — a denylist
// prefilter plus a stripped-down interpreter — not a hard security
// boundary.
package script

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// ErrDenied marks source rejected by the textual prefilter.
var ErrDenied = errors.New("denied pattern in script source")

// Textual prefilter: interpreter escapes and environment access. Word
// boundaries keep identifiers like "pos.x" from tripping the "os." rule.
var deniedSource = regexp.MustCompile(
	`\b(require|dofile|loadfile|load|loadstring|setfenv|getfenv|collectgarbage|rawequal|rawset|rawget|_G)\b` +
		`|\b(os|io|debug|package)\s*\.`)

// CheckSource rejects source text matching the denylist before it ever
// reaches the interpreter.
func CheckSource(src string) error {
	if m := deniedSource.FindString(src); m != "" {
		return fmt.Errorf("%w: %q", ErrDenied, m)
	}
	return nil
}

// NewRestrictedState builds an interpreter with only base, table, string,
// and math opened, and the loader/system escapes that base drags along
// stripped back out.
func NewRestrictedState() *lua.LState {
	ls := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		ls.Push(ls.NewFunction(lib.open))
		ls.Push(lua.LString(lib.name))
		ls.Call(1, 0)
	}

	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring", "require",
		"collectgarbage", "print", "rawset", "rawget", "rawequal",
		"setfenv", "getfenv",
	} {
		ls.SetGlobal(name, lua.LNil)
	}

	return ls
}

// Compile wraps src as a function body receiving the named params (via
// vararg capture) and compiles without executing. Denied or unparsable
// source returns an error; the caller decides whether that is fatal.
func Compile(ls *lua.LState, name, src string, params ...string) (*lua.LFunction, error) {
	if err := CheckSource(src); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}

	wrapped := src
	if len(params) > 0 {
		wrapped = "local " + strings.Join(params, ", ") + " = ...\n" + src
	}

	fn, err := ls.Load(strings.NewReader(wrapped), name)
	if err != nil {
		return nil, fmt.Errorf("compile script %s: %w", name, err)
	}
	return fn, nil
}
