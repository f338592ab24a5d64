// Package config loads masked-field definitions from JSON documents.
//
// A document declares the fields a form presents, each with its format,
// optional alternative formats, custom notations, and affinity strategy:
//
//	{
//	  "fields": [
//	    {
//	      "name": "Phone",
//	      "format": "+1 ([000]) [000]-[0000]",
//	      "affineFormats": ["\\+7 ([000]) [000]-[0000]"],
//	      "notations": [
//	        {"symbol": "h", "characters": "0123456789abcdef", "optional": false}
//	      ],
//	      "strategy": "whole-string"
//	    }
//	  ]
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/dshills/textmask/internal/mask"
	"github.com/dshills/textmask/internal/session"
)

// Errors returned by configuration loading.
var (
	// ErrInvalidDocument indicates the file is not valid JSON.
	ErrInvalidDocument = errors.New("invalid configuration document")

	// ErrNoFields indicates the document declares no fields.
	ErrNoFields = errors.New("no fields defined")

	// ErrMissingFormat indicates a field without a format string.
	ErrMissingFormat = errors.New("field format missing")

	// ErrBadNotation indicates a notation with a missing or multi-rune symbol.
	ErrBadNotation = errors.New("invalid notation definition")

	// ErrUnknownStrategy indicates an unrecognized affinity strategy name.
	ErrUnknownStrategy = errors.New("unknown affinity strategy")
)

// Strategy names accepted in configuration documents.
const (
	StrategyWholeString = "whole-string"
	StrategyPrefix      = "prefix"
)

// Field describes one masked input declared in a configuration document.
type Field struct {
	// Name labels the field in the UI.
	Name string
	// Format is the primary format string.
	Format string
	// AffineFormats are alternative formats, in declaration order.
	AffineFormats []string
	// Notations are custom character classes for this field's formats.
	Notations []mask.Notation
	// Strategy is the affinity strategy name; empty means whole-string.
	Strategy string
}

// Session compiles the field into a masking session.
func (f Field) Session() (*session.Session, error) {
	strategy, err := StrategyByName(f.Strategy)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}
	s, err := session.New(f.Format,
		session.WithAlternatives(f.AffineFormats...),
		session.WithNotations(f.Notations...),
		session.WithStrategy(strategy),
	)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", f.Name, err)
	}
	return s, nil
}

// StrategyByName maps a configuration strategy name to the engine
// implementation. The empty name selects whole-string.
func StrategyByName(name string) (mask.Strategy, error) {
	switch name {
	case "", StrategyWholeString:
		return mask.WholeString{}, nil
	case StrategyPrefix:
		return mask.Prefix{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Load reads a configuration document from disk.
func Load(path string) ([]Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	fields, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fields, nil
}

// Parse decodes field definitions from a JSON document.
func Parse(data []byte) ([]Field, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	declared := gjson.GetBytes(data, "fields")
	if !declared.IsArray() || len(declared.Array()) == 0 {
		return nil, ErrNoFields
	}

	var fields []Field
	var parseErr error
	declared.ForEach(func(_, item gjson.Result) bool {
		f := Field{
			Name:     item.Get("name").String(),
			Format:   item.Get("format").String(),
			Strategy: item.Get("strategy").String(),
		}
		if f.Format == "" {
			parseErr = fmt.Errorf("%w: field %q", ErrMissingFormat, f.Name)
			return false
		}
		if _, err := StrategyByName(f.Strategy); err != nil {
			parseErr = fmt.Errorf("field %q: %w", f.Name, err)
			return false
		}

		item.Get("affineFormats").ForEach(func(_, alt gjson.Result) bool {
			f.AffineFormats = append(f.AffineFormats, alt.String())
			return true
		})

		item.Get("notations").ForEach(func(_, nt gjson.Result) bool {
			symbol := nt.Get("symbol").String()
			if utf8.RuneCountInString(symbol) != 1 {
				parseErr = fmt.Errorf("%w: field %q symbol %q", ErrBadNotation, f.Name, symbol)
				return false
			}
			r, _ := utf8.DecodeRuneInString(symbol)
			f.Notations = append(f.Notations, mask.Notation{
				Symbol:     r,
				Characters: nt.Get("characters").String(),
				Optional:   nt.Get("optional").Bool(),
			})
			return true
		})
		if parseErr != nil {
			return false
		}

		fields = append(fields, f)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return fields, nil
}
