package migrate

import (
	"github.com/google/uuid"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// runNamespace scopes run IDs so they never collide with other name-based UUIDs.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vvka-141/slscmigrate/run"))

// RunID derives a stable run identifier from the input document checksum.
// Migrating the same bytes twice yields the same ID.
func RunID(inputChecksum string) string {
	return uuid.NewSHA1(runNamespace, []byte(inputChecksum)).String()
}

// NewReport builds the run report for a migration of a document with the given checksum.
func NewReport(stats Stats, inputChecksum string) slscmigrate.Report {
	return slscmigrate.Report{
		RunID:         RunID(inputChecksum),
		InputChecksum: inputChecksum,
		Version:       stats.Version.String(),
		Targets:       stats.Targets,
		Devices:       stats.Devices,
		Chassis:       stats.Chassis,
		Modules:       stats.Modules,
		FillerModules: stats.FillerModules,
		Aliases:       stats.Aliases,
	}
}
