package migrate

import (
	"strings"

	"github.com/vvka-141/slscmigrate/internal/sysdef"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

const (
	PropLegacyProductNum = "user.CD.productNum"
	PropLegacyVendorNum  = "user.CD.vendorNum"
	PropProductNumber    = "user.CD.productNumber"
	PropVendorNumber     = "user.CD.vendorNumber"

	legacyPluginDir = `Custom Devices\SLSC Plug-ins`
	nativePluginDir = `SLSC Plugins\Modules`
)

var renamedProperties = []struct{ from, to string }{
	{PropLegacyProductNum, PropProductNumber},
	{PropLegacyVendorNum, PropVendorNumber},
}

// migrateModule moves one module from the legacy chassis into the Modules
// container of chassis, applying the rule for its kind.
func (m *Migrator) migrateModule(sc scope, legacyChassis, chassis *sysdef.Section, module *sysdef.Section, stats *Stats) error {
	name := module.Name()
	sc = sc.enter(name)
	m.logger.Verbose("Parsing module %s", name)

	modules := chassis.FirstOf(sysdef.KindModules)

	switch module.Kind() {
	case sysdef.KindLegacyFillerModule:
		legacyChassis.Remove(module)
		modules.AddSection(name, sysdef.KindFillerModule)
		stats.FillerModules++
		return nil

	case sysdef.KindModule:
		if err := upgradeModuleProperties(sc, module); err != nil {
			return err
		}
		modules.Adopt(module)
		stats.Modules++
		return nil

	default:
		return sc.fail(slscmigrate.ErrUnknownModuleKind, "",
			"Remove the module from the chassis or migrate it by hand, then run again.",
			"module type %s has no migration rule", module.GUID())
	}
}

// upgradeModuleProperties renames the identification properties to their
// native names and points dependent files at the native plug-in directory.
func upgradeModuleProperties(sc scope, module *sysdef.Section) error {
	for _, r := range renamedProperties {
		prop := module.Property(r.from)
		if prop == nil {
			return sc.fail(slscmigrate.ErrStructuralMismatch, r.from, "", "module property is missing")
		}
		if err := prop.Retype(sysdef.ValueI32, sysdef.ValueU32); err != nil {
			return sc.fail(err, r.from, "", "cannot retype module property")
		}
		prop.Rename(r.to)
	}

	for _, prop := range module.Properties() {
		for _, file := range prop.DependentFiles() {
			file.SetPath(strings.ReplaceAll(file.Path(), legacyPluginDir, nativePluginDir))
			if dest, ok := file.Destination(); ok {
				file.SetDestination(strings.ReplaceAll(dest, legacyPluginDir, nativePluginDir))
			}
		}
	}
	return nil
}
