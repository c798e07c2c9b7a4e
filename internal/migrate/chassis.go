package migrate

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/vvka-141/slscmigrate/internal/sysdef"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// Legacy plug-in property names.
const (
	PropLegacyChassisIP = "user.CD.Chassis IP Address"
	PropLegacySlot      = "user.CD.Slot #"
)

type slottedModule struct {
	section *sysdef.Section
	slot    int
}

// migrateChassis recreates one legacy chassis under device and moves its
// modules there in ascending slot order.
func (m *Migrator) migrateChassis(sc scope, legacy, device *sysdef.Section, stats *Stats) error {
	name := legacy.Name()
	sc = sc.enter(name)
	m.logger.Verbose("Parsing chassis %s", name)

	ip, err := chassisAddress(sc, legacy)
	if err != nil {
		return err
	}

	modules, err := slotOrder(sc, legacy)
	if err != nil {
		return err
	}

	chassis := createSlscChassis(device, name, ip)
	stats.Chassis++

	for _, mod := range modules {
		if err := m.migrateModule(sc, legacy, chassis, mod.section, stats); err != nil {
			return err
		}
	}
	return nil
}

// chassisAddress decodes the chassis IP address stored as base64 text.
func chassisAddress(sc scope, legacy *sysdef.Section) (string, error) {
	prop := legacy.Property(PropLegacyChassisIP)
	if prop == nil {
		return "", sc.fail(slscmigrate.ErrStructuralMismatch, PropLegacyChassisIP,
			"Open the chassis in the legacy editor and set its IP address before migrating.",
			"chassis has no IP address property")
	}

	data, err := prop.Binary()
	if err != nil {
		return "", sc.fail(err, PropLegacyChassisIP, "", "cannot decode IP address")
	}
	if !utf8.Valid(data) {
		return "", sc.fail(slscmigrate.ErrMalformedBinaryProperty, PropLegacyChassisIP, "",
			"decoded IP address is not valid text")
	}
	return string(data), nil
}

// slotOrder returns the chassis' module sections sorted by slot number.
// Modules sharing a slot keep their document order.
func slotOrder(sc scope, legacy *sysdef.Section) ([]slottedModule, error) {
	var modules []slottedModule
	for _, s := range legacy.Sections() {
		prop := s.Property(PropLegacySlot)
		if prop == nil {
			return nil, sc.enter(s.Name()).fail(slscmigrate.ErrStructuralMismatch, PropLegacySlot, "",
				"module has no slot number")
		}
		slot, err := prop.Int()
		if err != nil {
			return nil, sc.enter(s.Name()).fail(err, PropLegacySlot, "", "invalid slot number")
		}
		modules = append(modules, slottedModule{section: s, slot: slot})
	}

	slices.SortStableFunc(modules, func(a, b slottedModule) int {
		return cmp.Compare(a.slot, b.slot)
	})
	return modules, nil
}
