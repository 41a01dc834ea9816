// Copyright (C) 2026  Aphelion Aerospace
//
// SPDX-License-Identifier: Apache-2.0

package prop

import (
	"fmt"
	"strings"

	"github.com/Aphelion-Aerospace/RocketProps/pkg/refdata"
)

// Summary renders the fixed-format state-point report for a substance.
// Field order and labels are part of the tool's compatibility surface:
// Name, T, P, Pvap, Pc, Tc, SGliq, SGvap, visc, cond, Tnbp, Tfreeze,
// Cp, MolWt, Hvap, surf.  A failed property lookup fails the whole
// report; no partial output is produced.
func Summary(sub *refdata.Substance, opts ...Option) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "====== RocketProps State Point of Liquid %s ======\n", sub.Name)
	name := sub.Name
	if len(sub.Aliases) > 0 {
		name += "  (" + strings.Join(sub.Aliases, ", ") + ")"
	}
	fmt.Fprintf(&b, "%-7s = %s\n", "Name", name)
	for _, p := range Properties {
		res, err := Query(sub, p, opts...)
		if err != nil {
			return "", fmt.Errorf("prop.Summary: %w", err)
		}
		fmt.Fprintf(&b, "%-7s = %10.6g %s\n", p, res.Value, res.Unit)
	}
	return b.String(), nil
}
