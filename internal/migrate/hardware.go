package migrate

import "github.com/vvka-141/slscmigrate/internal/sysdef"

const (
	deviceName   = "SLSC"
	modulesName  = "Modules"
	channelsName = "Channels"

	chassisType = "SLSC-12001"
	username    = "anonymous"
	// chassisIDTypeIP selects the IP address interpretation of "Chassis ID".
	chassisIDTypeIP = "1"
)

// Native chassis property names.
const (
	PropChassisType   = "Chassis Type"
	PropChassisID     = "Chassis ID"
	PropUsername      = "Username"
	PropPassword      = "Password"
	PropChassisIDType = "Chassis ID Type"
)

// createSlscCustomDevice adds the native SLSC device under a target's Hardware container.
func createSlscCustomDevice(hardware *sysdef.Section) *sysdef.Section {
	return hardware.AddSection(deviceName, sysdef.KindSLSCDevice)
}

// createSlscChassis adds a native chassis with its fixed properties, an empty
// Modules container and the sensor channel skeleton.
func createSlscChassis(device *sysdef.Section, name, ip string) *sysdef.Section {
	chassis := device.AddSection(name, sysdef.KindChassis)
	chassis.AddProperty(PropChassisType, sysdef.ValueString, chassisType)
	chassis.AddProperty(PropChassisID, sysdef.ValueString, ip)
	chassis.AddProperty(PropUsername, sysdef.ValueString, username)
	chassis.AddProperty(PropPassword, sysdef.ValueString, "")
	chassis.AddProperty(PropChassisIDType, sysdef.ValueI32, chassisIDTypeIP)

	chassis.AddSection(modulesName, sysdef.KindModules)

	channels := chassis.AddSection(channelsName, sysdef.KindChannels)
	for _, sensor := range chassisSensors {
		s := channels.AddSection(sensor.name, sysdef.KindSensor)
		for _, spec := range sensor.channels {
			s.AddChannel(spec)
		}
	}
	return chassis
}
