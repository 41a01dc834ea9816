package main

import (
	"context"
	"os"
	"strings"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/mixture"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
	"github.com/Aphelion-Aerospace/RocketProps/pkg/unit"
)

// lookupSubstance loads the registry and resolves a substance name,
// alias, or buildable blend name ("M20", "MON15", "FLOX70").
func lookupSubstance(ctx context.Context, name string) (*refdata.Substance, error) {
	reg, err := refdata.Load(ctx)
	if err != nil {
		return nil, err
	}
	return mixture.Lookup(ctx, reg, name)
}

// envDefaultUnit consults ROCKETPROPS_UNITS (a comma-separated list of
// unit names, at most one per quantity family) for a default output
// unit of the given family.  Unknown names in the list are ignored;
// explicit --units always wins over this.
func envDefaultUnit(family unit.Family) string {
	for _, name := range strings.Split(os.Getenv("ROCKETPROPS_UNITS"), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if f, err := unit.Lookup(name); err == nil && f == family {
			return name
		}
	}
	return unit.Base(family)
}
