package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/slscmigrate/internal/migrate"
)

func TestRewriteAliasPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{
			name:   "module under legacy device",
			path:   "Targets/Controller/Custom Devices/SLSC/ChassisA/Mod1",
			want:   "Targets/Controller/Hardware/SLSC/ChassisA/Modules/Mod1",
			wantOK: true,
		},
		{
			name:   "names with spaces",
			path:   "Targets/Controller/Custom Devices/SLSC/Rack 1/PSU Module",
			want:   "Targets/Controller/Hardware/SLSC/Rack 1/Modules/PSU Module",
			wantOK: true,
		},
		{
			name: "unrelated path",
			path: "Targets/Controller/Other/Thing",
			want: "Targets/Controller/Other/Thing",
		},
		{
			name: "channel below module",
			path: "Targets/Controller/Custom Devices/SLSC/ChassisA/Mod1/AI0",
			want: "Targets/Controller/Custom Devices/SLSC/ChassisA/Mod1/AI0",
		},
		{
			name: "chassis only",
			path: "Targets/Controller/Custom Devices/SLSC/ChassisA",
			want: "Targets/Controller/Custom Devices/SLSC/ChassisA",
		},
		{
			name: "empty chassis segment",
			path: "Targets/Controller/Custom Devices/SLSC//Mod1",
			want: "Targets/Controller/Custom Devices/SLSC//Mod1",
		},
		{
			name: "empty module segment",
			path: "Targets/Controller/Custom Devices/SLSC/ChassisA/",
			want: "Targets/Controller/Custom Devices/SLSC/ChassisA/",
		},
		{
			name: "other target",
			path: "Targets/Backup/Custom Devices/SLSC/ChassisA/Mod1",
			want: "Targets/Backup/Custom Devices/SLSC/ChassisA/Mod1",
		},
		{
			name: "other custom device",
			path: "Targets/Controller/Custom Devices/Scan Engine/ChassisA/Mod1",
			want: "Targets/Controller/Custom Devices/Scan Engine/ChassisA/Mod1",
		},
		{
			name: "already native",
			path: "Targets/Controller/Hardware/SLSC/ChassisA/Modules/Mod1",
			want: "Targets/Controller/Hardware/SLSC/ChassisA/Modules/Mod1",
		},
		{
			name: "empty",
			path: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := migrate.RewriteAliasPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
