package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/reflectkit/introspector/fieldmap"
	"github.com/reflectkit/introspector/internal/config"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func render(w io.Writer, format string, fm *fieldmap.FieldMap) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fm); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		out, err := json.MarshalIndent(fm, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case config.FormatSpew:
		spewConfig.Fdump(w, fm.ToMap())
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
