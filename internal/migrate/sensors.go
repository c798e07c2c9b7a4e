package migrate

import "github.com/vvka-141/slscmigrate/internal/sysdef"

// healthStates is the value table of every HealthState channel. Order matters:
// it is the order of both the dictionary entries and the description lines.
var healthStates = []sysdef.Entry{
	{Key: "Unknown", Value: "-1"},
	{Key: "Normal", Value: "0"},
	{Key: "OutOfSpec", Value: "1"},
	{Key: "RiskOfDamage", Value: "2"},
}

type sensorSpec struct {
	name     string
	channels []sysdef.ChannelSpec
}

// chassisSensors is the fixed channel skeleton every native chassis carries.
var chassisSensors = []sensorSpec{
	{
		name: "BatteryVoltageSensor",
		channels: []sysdef.ChannelSpec{
			{Name: "SensorReading", DefaultValue: "0", Description: "The current voltage of the battery in unit voltage."},
			{Name: "SensorNominal", DefaultValue: "3.6", Description: "The nomial voltage of the battery in unit voltage."},
			{Name: "SensorLowerCritical", DefaultValue: "2.9", Description: "The lower battery threshold in unit voltage."},
			{Name: "HealthState", DefaultValue: "-1", Units: sysdef.UnitsEnum, Description: "Health State of the chassis battery.\n", ValueTable: healthStates},
		},
	},
	{
		name: "FanVoltageSensor",
		channels: []sysdef.ChannelSpec{
			{Name: "SensorReading", DefaultValue: "0", Description: "The current voltage of the fan in unit voltage."},
			{Name: "SensorLowerCritical", DefaultValue: "0.08", Description: "The fan's lower threshold of the operating voltage in unit voltage."},
			{Name: "SensorUpperCritical", DefaultValue: "0.12", Description: "The fan's upper threshold of the operating voltage in unit voltage."},
			{Name: "HealthState", DefaultValue: "-1", Units: sysdef.UnitsEnum, Description: "Health State of the chassis fan.\n", ValueTable: healthStates},
		},
	},
}
