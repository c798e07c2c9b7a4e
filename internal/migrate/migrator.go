package migrate

import (
	"github.com/vvka-141/slscmigrate/internal/sysdef"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// Stats counts what a migration changed.
type Stats struct {
	Version       sysdef.Version
	Targets       int
	Devices       int
	Chassis       int
	Modules       int
	FillerModules int
	Aliases       int
}

// Migrator converts a legacy system definition to the native hardware schema.
// It mutates the document in place and never touches the filesystem; on error
// the document is left partially modified and must be discarded.
type Migrator struct {
	logger slscmigrate.Logger
}

// New creates a Migrator that reports progress through logger.
// Panics if logger is nil.
func New(logger slscmigrate.Logger) *Migrator {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Migrator{logger: logger}
}

// targetPlan is a target whose legacy devices have been located and checked
// before anything is changed.
type targetPlan struct {
	target        *sysdef.Target
	customDevices *sysdef.Section
	hardware      *sysdef.Section
	legacy        []*sysdef.Section
}

// Migrate runs the whole migration on doc. A document that is already current
// yields an error wrapping slscmigrate.ErrAlreadyMigrated and is not modified.
func (m *Migrator) Migrate(doc *sysdef.Document) (Stats, error) {
	var stats Stats

	v, err := CheckVersion(doc)
	stats.Version = v
	if err != nil {
		return stats, err
	}
	m.logger.Verbose("Version: %s", v)

	plans, err := m.plan(doc)
	if err != nil {
		return stats, err
	}

	for _, p := range plans {
		if err := m.migrateTarget(p, &stats); err != nil {
			return stats, err
		}
	}

	stats.Aliases = m.rewriteAliases(doc)
	return stats, nil
}

// plan locates the legacy devices of every target and rejects targets that
// cannot be migrated, so that no target is touched when another one is invalid.
func (m *Migrator) plan(doc *sysdef.Document) ([]targetPlan, error) {
	var plans []targetPlan
	for _, t := range doc.Targets() {
		sc := scope{target: t.Name()}

		cd := t.FirstOf(sysdef.KindCustomDevices)
		if cd == nil {
			m.logger.Verbose("Target %s has no custom devices, skipping", t.Name())
			continue
		}
		legacy := cd.SectionsOf(sysdef.KindLegacySLSCDevice)
		if len(legacy) == 0 {
			m.logger.Verbose("Target %s has no legacy SLSC device, skipping", t.Name())
			continue
		}

		hw := t.FirstOf(sysdef.KindHardware)
		if hw == nil {
			return nil, sc.fail(slscmigrate.ErrStructuralMismatch, "",
				"Add the target's Hardware section (open and save the file in the current editor) and run again.",
				"target has a legacy SLSC device but no Hardware section")
		}
		if hw.FirstOf(sysdef.KindSLSCDevice) != nil {
			return nil, sc.fail(slscmigrate.ErrMixedState, "",
				"Remove either the legacy SLSC custom device or the native SLSC device from the target.",
				"target contains both the legacy and the native SLSC device")
		}

		plans = append(plans, targetPlan{target: t, customDevices: cd, hardware: hw, legacy: legacy})
	}
	return plans, nil
}

func (m *Migrator) migrateTarget(p targetPlan, stats *Stats) error {
	name := p.target.Name()
	m.logger.Verbose("Parsing target %s", name)
	stats.Targets++

	for _, legacy := range p.legacy {
		sc := scope{target: name}.enter(p.customDevices.Name()).enter(legacy.Name())
		device := createSlscCustomDevice(p.hardware)
		stats.Devices++

		for _, chassis := range legacy.SectionsOf(sysdef.KindLegacyChassis) {
			if err := m.migrateChassis(sc, chassis, device, stats); err != nil {
				return err
			}
		}
		p.customDevices.Remove(legacy)
	}
	return nil
}

// rewriteAliases updates every alias that pointed into a legacy device and
// returns how many were changed.
func (m *Migrator) rewriteAliases(doc *sysdef.Document) int {
	rewritten := 0
	for _, a := range doc.Aliases() {
		m.logger.Verbose("Parsing alias %s", a.Name())
		path, ok := a.Path()
		if !ok {
			m.logger.Verbose("Alias %s has no dependent node, skipping", a.Name())
			continue
		}
		if next, ok := RewriteAliasPath(path); ok {
			a.SetPath(next)
			rewritten++
		}
	}
	return rewritten
}
