package sysdef

import (
	"fmt"
	"strings"
)

// Kind is the semantic role of a Section or Channel, independent of its display name.
type Kind int

const (
	KindUnknown Kind = iota
	KindCustomDevices
	KindLegacySLSCDevice
	KindHardware
	KindSLSCDevice
	KindLegacyChassis
	KindChassis
	KindModules
	KindChannels
	KindSensor
	KindChannel
	KindLegacyFillerModule
	KindFillerModule
	KindModule
	KindAliases
)

type kindEntry struct {
	name string
	guid string
}

// registry maps every known kind to its schema identifier. Created elements
// always carry these exact literals.
var registry = map[Kind]kindEntry{
	KindCustomDevices:      {"Custom-Device-Container", "03D3BB79-1485-13A6-5605EB7AFD7405AC"},
	KindLegacySLSCDevice:   {"Legacy-SLSC-Device", "68d6ddc1-274e-40d9-a262-438cd80b3ca1"},
	KindHardware:           {"Hardware-Container", "775504AB-1485-13A6-560018C1F4E3EEE1"},
	KindSLSCDevice:         {"New-SLSC-Device", "3ea8ee87-daf4-4abc-a6e6-9c54a9452824"},
	KindLegacyChassis:      {"Legacy-Chassis", "245650ba-7530-4e16-bde5-f4dcd94687da"},
	KindChassis:            {"Chassis", "2d230194-1f79-4241-ad00-e5b0a0d634cb"},
	KindModules:            {"Modules-Container", "96319964-d29d-4af0-9c60-b1a785679b5f"},
	KindChannels:           {"Channels-Container", "fa98037a-a524-4a77-b7d2-13997631fa25"},
	KindSensor:             {"Sensor-Channel", "96faf7a1-7cab-4db2-971e-68b73536c883"},
	KindChannel:            {"Channel-Leaf", "92ef77b2-7367-42f8-a914-3eb37c710e2e"},
	KindLegacyFillerModule: {"Legacy-Filler-Module", "168e3b1f-bb45-4207-8830-40e21915deae"},
	KindFillerModule:       {"Filler-Module", "8a754f70-4d3d-42e2-9846-157cb4981bb4"},
	KindModule:             {"Real-Module", "c474772f-1eb5-4c79-98d9-8846819e1c09"},
	KindAliases:            {"Alias-Container", "e11f4519-09e6-4fb0-99df-2967c4313d67"},
}

var byGUID = func() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for k, e := range registry {
		m[strings.ToLower(e.guid)] = k
	}
	return m
}()

// KindOf returns the kind registered for guid, or KindUnknown.
// GUIDs compare case-insensitively.
func KindOf(guid string) Kind {
	if k, ok := byGUID[strings.ToLower(strings.TrimSpace(guid))]; ok {
		return k
	}
	return KindUnknown
}

// GUID returns the schema identifier of k, or "" for KindUnknown.
func (k Kind) GUID() string {
	return registry[k].guid
}

func (k Kind) String() string {
	if e, ok := registry[k]; ok {
		return e.name
	}
	if k == KindUnknown {
		return "Unknown"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Is reports whether guid identifies kind k.
func (k Kind) Is(guid string) bool {
	return k != KindUnknown && KindOf(guid) == k
}
