package generator

import (
	"github.com/nikogura/lifesim/pkg/sampler"
)

// Death draws when and how a life ends.
type Death struct {
	env Env
}

// NewDeath creates a death generator.
func NewDeath(env Env) (d *Death) {
	d = &Death{env: env}
	return d
}

// SelectDeathAge draws the age at death from the region's distribution.
func (d *Death) SelectDeathAge() (age int) {
	table := make(sampler.Table[int], 0, len(d.env.Region.DeathAges))
	for _, a := range d.env.Region.DeathAges {
		table = append(table, sampler.Entry[int]{Category: a.Age, Weight: a.Weight})
	}

	age, err := sampler.Draw(d.env.Src, table)
	if err != nil {
		age = sampler.IntBetween(d.env.Src, d.env.Coeff.Death.DefaultMinAge, d.env.Coeff.Death.DefaultMaxAge)
	}
	return age
}

// SelectDeathCause draws a cause of death for someone who died at age.
//
// Old age is never a cause below the configured minimum age. The age group's table is
// used first, then the fallback table, then the fallback cause.
func (d *Death) SelectDeathCause(age int) (cause string) {
	model := d.env.Coeff.Death
	allowed := func(c string) bool {
		return c != model.OldAgeCause || age >= model.OldAgeMinAge
	}

	var table sampler.Table[string]
	for _, group := range d.env.Region.DeathCauses {
		if age >= group.MinAge && age <= group.MaxAge {
			table = group.Causes.Table().Filter(allowed)
			break
		}
	}

	if len(table) == 0 {
		table = d.env.Region.FallbackDeathCauses.Table().Filter(allowed)
	}

	cause = sampler.DrawOr(d.env.Src, table, model.FallbackCause)
	return cause
}
