// Package preludecfg loads a YAML manifest of extra prelude bindings
// (SPEC_FULL §10.F), the way the teacher's internal/ext package loads
// funxy.yaml via gopkg.in/yaml.v3 — scaled down to this project's much
// narrower need: no Go-interop code generation, just named type schemes
// folded into spec.md §4.F's base prelude.
package preludecfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bookowl/typeinfer/internal/env"
	"github.com/bookowl/typeinfer/internal/parser"
)

// Manifest is the top-level shape of a prelude.yaml file.
type Manifest struct {
	Bindings []Binding `yaml:"bindings"`
}

// Binding names one extra prelude entry and its scheme, written in the
// surface syntax internal/parser.ParseScheme understands (SPEC_FULL §11.C).
type Binding struct {
	Name   string `yaml:"name"`
	Scheme string `yaml:"scheme"`
}

// Load reads and parses a manifest file. It does not apply the bindings to
// any environment — call Extend with the result.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prelude manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing prelude manifest: %w", err)
	}
	return &m, nil
}

// Extend folds a manifest's bindings into base, returning a new environment.
// A name that already exists in base is a load-time error, never a silent
// shadow: the base prelude's soundness must not depend on load order
// (SPEC_FULL §10.F).
func Extend(base *env.Env, m *Manifest) (*env.Env, error) {
	e := base
	for _, b := range m.Bindings {
		if _, ok := base.Lookup(b.Name); ok {
			return nil, fmt.Errorf("prelude manifest redefines built-in name %q", b.Name)
		}
		scheme, err := parser.ParseScheme(b.Scheme)
		if err != nil {
			return nil, fmt.Errorf("parsing scheme for %q: %w", b.Name, err)
		}
		e = e.Extend(b.Name, scheme)
	}
	return e, nil
}
