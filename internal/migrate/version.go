package migrate

import (
	"fmt"

	"github.com/vvka-141/slscmigrate/internal/sysdef"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// CheckVersion reads the document's version marker and reports whether it
// still needs migrating. Documents at or above slscmigrate.TargetSchemaMajor
// return an error wrapping slscmigrate.ErrAlreadyMigrated.
func CheckVersion(doc *sysdef.Document) (sysdef.Version, error) {
	v, err := doc.Version()
	if err != nil {
		return sysdef.Version{}, &Error{
			Message: "cannot read document version",
			Hint:    "A system definition starts with <Version Major=\"..\" Minor=\"..\"> under its document element.",
			Err:     err,
		}
	}
	if v.Major >= slscmigrate.TargetSchemaMajor {
		return v, fmt.Errorf("version %s: %w", v, slscmigrate.ErrAlreadyMigrated)
	}
	return v, nil
}
