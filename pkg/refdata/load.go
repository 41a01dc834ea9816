// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package refdata

import (
	"context"
	"embed"
	"fmt"
	"path"
	"sort"

	"github.com/datawire/dlib/dlog"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/apimachinery/pkg/util/sets"
	"sigs.k8s.io/yaml"
)

//go:embed data/*.yaml
var dataFS embed.FS

type manifest struct {
	Version    string `json:"version"`
	Generated  string `json:"generated"`
	Substances int    `json:"substances"`
}

// Load parses and validates every embedded reference table and returns
// the registry.  Every validation failure across the whole dataset is
// reported, not just the first one; a non-nil error means the dataset
// is unusable and startup should fail.
func Load(ctx context.Context) (*Registry, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("refdata.Load: %w", err)
	}
	reg := &Registry{byKey: make(map[string]*Substance)}
	var errs []error
	var count int
	for _, entry := range entries {
		name := path.Join("data", entry.Name())
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("refdata.Load: %w", err)
		}
		if entry.Name() == "dataset.yaml" {
			var m manifest
			if err := yaml.Unmarshal(raw, &m, yaml.DisallowUnknownFields); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			reg.version = m.Version
			reg.generated = m.Generated
			count = m.Substances
			continue
		}
		var sub Substance
		if err := yaml.Unmarshal(raw, &sub, yaml.DisallowUnknownFields); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if verrs := validate(&sub); len(verrs) > 0 {
			for _, verr := range verrs {
				errs = append(errs, fmt.Errorf("%s: %w", name, verr))
			}
			continue
		}
		if err := sub.Compile(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if err := reg.add(&sub); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		dlog.Debugf(ctx, "refdata: loaded %s (%d aliases)", sub.Name, len(sub.Aliases))
	}
	if reg.version == "" {
		errs = append(errs, fmt.Errorf("data/dataset.yaml: missing or empty version stamp"))
	}
	if count != 0 && count != len(reg.names) {
		errs = append(errs, fmt.Errorf("data/dataset.yaml: manifest says %d substances, loaded %d",
			count, len(reg.names)))
	}
	if err := utilerrors.NewAggregate(errs); err != nil {
		return nil, fmt.Errorf("refdata.Load: %w", err)
	}
	dlog.Infof(ctx, "refdata: dataset %s (%s), %d substances",
		reg.version, reg.generated, len(reg.names))
	return reg, nil
}

// validate checks one substance record for internal consistency.  It
// returns every problem it finds.
func validate(sub *Substance) []error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("substance %s: "+format, append([]interface{}{sub.Name}, args...)...))
	}
	if sub.Name == "" {
		errs = append(errs, fmt.Errorf("substance with no name"))
		return errs
	}
	if sub.MolWt <= 0 {
		bad("molWt %g is not positive", sub.MolWt)
	}
	if sub.Critical.T <= 0 || sub.Critical.P <= 0 {
		bad("critical constants T=%g P=%g are not positive", sub.Critical.T, sub.Critical.P)
	}
	if !(sub.Tfreeze < sub.Tnbp && sub.Tnbp < sub.Critical.T) {
		bad("temperature ordering Tfreeze=%g < Tnbp=%g < Tc=%g violated",
			sub.Tfreeze, sub.Tnbp, sub.Critical.T)
	}
	if sub.Tref < sub.Tfreeze || sub.Tref > sub.Critical.T {
		bad("Tref=%g outside [Tfreeze=%g, Tc=%g]", sub.Tref, sub.Tfreeze, sub.Critical.T)
	}

	known := sets.NewString(CurveProperties...)
	for property, anchors := range sub.Anchors {
		if !known.Has(property) {
			bad("anchors for unknown property %q", property)
		}
		for _, a := range anchors {
			if a.Source == "" {
				bad("property %s: anchor at T=%g has no source label", property, a.T)
			}
			if a.T < sub.Tfreeze || a.T > sub.Critical.T {
				bad("property %s: %s anchor at T=%g outside [Tfreeze=%g, Tc=%g]",
					property, a.Source, a.T, sub.Tfreeze, sub.Critical.T)
			}
		}
	}
	for _, property := range sortedKeys(sub.Curves) {
		if !known.Has(property) {
			bad("curves for unknown property %q", property)
		}
		var selected int
		for _, spec := range sub.Curves[property] {
			if spec.Selected {
				selected++
			}
			if spec.TrMin >= spec.TrMax {
				bad("property %s: %s/%s domain [%g, %g] is empty",
					property, spec.Fit, spec.Source, spec.TrMin, spec.TrMax)
			}
		}
		if selected != 1 {
			bad("property %s: %d selected curves, want exactly 1", property, selected)
		}
	}
	for _, property := range CurveProperties {
		if _, ok := sub.Curves[property]; !ok {
			bad("no curve for property %s", property)
		}
	}
	return errs
}

func sortedKeys(m map[string][]CurveSpec) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
