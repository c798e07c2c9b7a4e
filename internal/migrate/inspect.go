package migrate

import (
	"errors"

	"github.com/vvka-141/slscmigrate/internal/sysdef"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// Inspection describes what a migration of a document would touch.
type Inspection struct {
	Version        sysdef.Version
	NeedsMigration bool
	Targets        int
	LegacyDevices  int
	Chassis        int
	Modules        int
}

// Inspect reads doc without modifying it and counts the legacy sections a
// migration would convert. A document that is already current is reported with
// NeedsMigration false and a nil error.
func Inspect(doc *sysdef.Document) (Inspection, error) {
	var in Inspection

	v, err := CheckVersion(doc)
	in.Version = v
	if errors.Is(err, slscmigrate.ErrAlreadyMigrated) {
		return in, nil
	}
	if err != nil {
		return in, err
	}

	for _, t := range doc.Targets() {
		cd := t.FirstOf(sysdef.KindCustomDevices)
		if cd == nil {
			continue
		}
		legacy := cd.SectionsOf(sysdef.KindLegacySLSCDevice)
		if len(legacy) == 0 {
			continue
		}
		in.Targets++
		in.LegacyDevices += len(legacy)
		for _, device := range legacy {
			for _, chassis := range device.SectionsOf(sysdef.KindLegacyChassis) {
				in.Chassis++
				in.Modules += len(chassis.Sections())
			}
		}
	}
	in.NeedsMigration = in.LegacyDevices > 0
	return in, nil
}
