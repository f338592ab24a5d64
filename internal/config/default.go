package config

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Default returns the built-in demo field set.
func Default() []Field {
	return []Field{
		{
			Name:          "Phone",
			Format:        "+1 ([000]) [000]-[0000]",
			AffineFormats: []string{`\+7 ([000]) [000]-[0000]`},
		},
		{
			Name:   "Date",
			Format: "[00]{/}[00]{/}[0000]",
		},
		{
			Name:     "ZIP",
			Format:   "[00000]{-}[9999]",
			Strategy: StrategyPrefix,
		},
	}
}

// Marshal renders field definitions back into a JSON document that
// Parse accepts.
func Marshal(fields []Field) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	for i, f := range fields {
		base := fmt.Sprintf("fields.%d", i)
		if out, err = sjson.SetBytes(out, base+".name", f.Name); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, base+".format", f.Format); err != nil {
			return nil, err
		}
		for j, alt := range f.AffineFormats {
			if out, err = sjson.SetBytes(out, fmt.Sprintf("%s.affineFormats.%d", base, j), alt); err != nil {
				return nil, err
			}
		}
		for j, n := range f.Notations {
			nbase := fmt.Sprintf("%s.notations.%d", base, j)
			if out, err = sjson.SetBytes(out, nbase+".symbol", string(n.Symbol)); err != nil {
				return nil, err
			}
			if out, err = sjson.SetBytes(out, nbase+".characters", n.Characters); err != nil {
				return nil, err
			}
			if out, err = sjson.SetBytes(out, nbase+".optional", n.Optional); err != nil {
				return nil, err
			}
		}
		if f.Strategy != "" {
			if out, err = sjson.SetBytes(out, base+".strategy", f.Strategy); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
