// Package plugin loads custom notations from Lua scripts.
//
// A notation script runs in a sandboxed Lua state and returns an array
// of notation tables:
//
//	return {
//	  { symbol = "h", characters = "0123456789abcdef", optional = false },
//	  { symbol = "s", characters = " -", optional = true },
//	}
//
// Scripts have access to the base, table, string and math libraries
// only; io, os, debug and package are never opened.
package plugin

import (
	"errors"
	"fmt"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/textmask/internal/mask"
)

// Errors returned by notation script loading.
var (
	// ErrNoResult indicates the script did not return a table.
	ErrNoResult = errors.New("notation script returned no table")

	// ErrBadNotationTable indicates a malformed notation entry.
	ErrBadNotationTable = errors.New("invalid notation table")
)

// LoadNotations executes the Lua script at path and returns the
// notations it declares.
func LoadNotations(path string) ([]mask.Notation, error) {
	L := newState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("notation script %s: %w", path, err)
	}
	return collect(L)
}

// ParseNotations executes an in-memory Lua script. Used by tests and
// callers that embed scripts.
func ParseNotations(script string) ([]mask.Notation, error) {
	L := newState()
	defer L.Close()

	if err := L.DoString(script); err != nil {
		return nil, fmt.Errorf("notation script: %w", err)
	}
	return collect(L)
}

// newState creates a Lua state with only safe libraries opened.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}

// collect converts the script's return value into notations.
func collect(L *lua.LState) ([]mask.Notation, error) {
	ret, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, ErrNoResult
	}

	var notations []mask.Notation
	var convErr error
	ret.ForEach(func(_, v lua.LValue) {
		if convErr != nil {
			return
		}
		entry, ok := v.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("%w: entry is %s, not a table", ErrBadNotationTable, v.Type())
			return
		}
		n, err := toNotation(entry)
		if err != nil {
			convErr = err
			return
		}
		notations = append(notations, n)
	})
	if convErr != nil {
		return nil, convErr
	}
	return notations, nil
}

func toNotation(entry *lua.LTable) (mask.Notation, error) {
	symbol, ok := entry.RawGetString("symbol").(lua.LString)
	if !ok || utf8.RuneCountInString(string(symbol)) != 1 {
		return mask.Notation{}, fmt.Errorf("%w: symbol must be a single character", ErrBadNotationTable)
	}
	characters, ok := entry.RawGetString("characters").(lua.LString)
	if !ok || characters == "" {
		return mask.Notation{}, fmt.Errorf("%w: characters must be a non-empty string", ErrBadNotationTable)
	}

	optional := false
	if b, ok := entry.RawGetString("optional").(lua.LBool); ok {
		optional = bool(b)
	}

	r, _ := utf8.DecodeRuneInString(string(symbol))
	return mask.Notation{
		Symbol:     r,
		Characters: string(characters),
		Optional:   optional,
	}, nil
}
