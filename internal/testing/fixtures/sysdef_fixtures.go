package fixtures

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/vvka-141/slscmigrate/internal/sysdef"
)

// Property names the legacy SLSC plug-in stores on its sections.
const (
	ChassisIPProperty = "user.CD.Chassis IP Address"
	SlotProperty      = "user.CD.Slot #"
	ProductProperty   = "user.CD.productNum"
	VendorProperty    = "user.CD.vendorNum"
	ModuleFileProp    = "user.CD.Module File"
)

// SystemDefinitionBuilder provides a fluent API for building legacy system
// definition documents used in migration tests.
//
// Example usage:
//
//	doc := NewSystemDefinitionBuilder(2016, 0).
//	    AddTarget("Controller", func(t *TargetBuilder) {
//	        t.AddChassis("ChassisA", "10.0.0.5", func(c *ChassisBuilder) {
//	            c.AddModule("Mod1", 1)
//	            c.AddFiller("Slot2", 2)
//	        })
//	    }).
//	    AddAlias("A1", "Targets/Controller/Custom Devices/SLSC/ChassisA/Mod1").
//	    Build()
type SystemDefinitionBuilder struct {
	major, minor int
	targets      []*TargetBuilder
	aliases      [][2]string
}

// NewSystemDefinitionBuilder starts a document with the given version marker.
func NewSystemDefinitionBuilder(major, minor int) *SystemDefinitionBuilder {
	return &SystemDefinitionBuilder{major: major, minor: minor}
}

// AddTarget adds a target with Custom Devices and Hardware containers.
func (b *SystemDefinitionBuilder) AddTarget(name string, fn func(*TargetBuilder)) *SystemDefinitionBuilder {
	t := &TargetBuilder{name: name, hardware: true, customDevices: true}
	if fn != nil {
		fn(t)
	}
	b.targets = append(b.targets, t)
	return b
}

// AddAlias adds an alias to the root alias container.
func (b *SystemDefinitionBuilder) AddAlias(name, path string) *SystemDefinitionBuilder {
	b.aliases = append(b.aliases, [2]string{name, path})
	return b
}

// Build renders the document.
func (b *SystemDefinitionBuilder) Build() string {
	var w strings.Builder
	w.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	w.WriteString(`<SystemDefinitionFile>` + "\n")
	fmt.Fprintf(&w, "  <Version Major=\"%d\" Minor=\"%d\" Fix=\"0\" Build=\"0\" />\n", b.major, b.minor)
	w.WriteString(`  <Root Name="System Definition">` + "\n")
	w.WriteString("    <Description />\n    <Properties />\n    <Errors />\n")
	w.WriteString("    <TargetSections>\n")
	for _, t := range b.targets {
		t.render(&w)
	}
	w.WriteString("    </TargetSections>\n")
	fmt.Fprintf(&w, "    <Section Name=\"Aliases\" TypeGUID=\"%s\">\n", sysdef.KindAliases.GUID())
	w.WriteString("      <Description />\n      <Properties />\n      <Errors />\n")
	for _, a := range b.aliases {
		fmt.Fprintf(&w, "      <Alias Name=\"%s\">\n", esc(a[0]))
		fmt.Fprintf(&w, "        <Properties><Property Name=\"Linked Channel\"><DependentNode Path=\"%s\" /></Property></Properties>\n", esc(a[1]))
		w.WriteString("      </Alias>\n")
	}
	w.WriteString("    </Section>\n")
	w.WriteString("  </Root>\n")
	w.WriteString("</SystemDefinitionFile>\n")
	return w.String()
}

// Bytes renders the document as bytes.
func (b *SystemDefinitionBuilder) Bytes() []byte {
	return []byte(b.Build())
}

// TargetBuilder builds one <Target>.
type TargetBuilder struct {
	name          string
	hardware      bool
	customDevices bool
	nativeDevice  bool
	devices       [][]*ChassisBuilder
}

// WithoutHardware omits the Hardware container.
func (t *TargetBuilder) WithoutHardware() *TargetBuilder {
	t.hardware = false
	return t
}

// WithoutCustomDevices omits the Custom Devices container.
func (t *TargetBuilder) WithoutCustomDevices() *TargetBuilder {
	t.customDevices = false
	return t
}

// WithNativeDevice adds an already-migrated SLSC device under Hardware.
func (t *TargetBuilder) WithNativeDevice() *TargetBuilder {
	t.nativeDevice = true
	return t
}

// AddChassis adds a chassis to the target's legacy SLSC device, creating the device on first use.
func (t *TargetBuilder) AddChassis(name, ip string, fn func(*ChassisBuilder)) *TargetBuilder {
	if len(t.devices) == 0 {
		t.devices = append(t.devices, nil)
	}
	c := newChassis(name, base64.StdEncoding.EncodeToString([]byte(ip)), fn)
	t.devices[len(t.devices)-1] = append(t.devices[len(t.devices)-1], c)
	return t
}

// AddChassisRawIP adds a chassis whose IP property holds encoded verbatim.
func (t *TargetBuilder) AddChassisRawIP(name, encoded string, fn func(*ChassisBuilder)) *TargetBuilder {
	if len(t.devices) == 0 {
		t.devices = append(t.devices, nil)
	}
	c := newChassis(name, encoded, fn)
	t.devices[len(t.devices)-1] = append(t.devices[len(t.devices)-1], c)
	return t
}

// AddLegacyDevice starts an additional, empty legacy SLSC device. Subsequent
// AddChassis calls attach to it.
func (t *TargetBuilder) AddLegacyDevice() *TargetBuilder {
	t.devices = append(t.devices, []*ChassisBuilder{})
	return t
}

func (t *TargetBuilder) render(w *strings.Builder) {
	fmt.Fprintf(w, "      <Target Name=\"%s\">\n", esc(t.name))
	w.WriteString("        <Description />\n        <Properties />\n        <Errors />\n")
	if t.customDevices {
		fmt.Fprintf(w, "        <Section Name=\"Custom Devices\" TypeGUID=\"%s\">\n", sysdef.KindCustomDevices.GUID())
		w.WriteString("          <Description />\n          <Properties />\n          <Errors />\n")
		for _, device := range t.devices {
			fmt.Fprintf(w, "          <Section Name=\"SLSC\" TypeGUID=\"%s\">\n", sysdef.KindLegacySLSCDevice.GUID())
			w.WriteString("            <Description />\n            <Properties />\n            <Errors />\n")
			for _, c := range device {
				c.render(w)
			}
			w.WriteString("          </Section>\n")
		}
		w.WriteString("        </Section>\n")
	}
	if t.hardware {
		fmt.Fprintf(w, "        <Section Name=\"Hardware\" TypeGUID=\"%s\">\n", sysdef.KindHardware.GUID())
		w.WriteString("          <Description />\n          <Properties />\n          <Errors />\n")
		if t.nativeDevice {
			fmt.Fprintf(w, "          <Section Name=\"SLSC\" TypeGUID=\"%s\"><Description /><Properties /><Errors /></Section>\n", sysdef.KindSLSCDevice.GUID())
		}
		w.WriteString("        </Section>\n")
	}
	w.WriteString("      </Target>\n")
}

// ChassisBuilder builds one legacy chassis section.
type ChassisBuilder struct {
	name      string
	encodedIP string
	omitIP    bool
	modules   []*ModuleBuilder
}

func newChassis(name, encodedIP string, fn func(*ChassisBuilder)) *ChassisBuilder {
	c := &ChassisBuilder{name: name, encodedIP: encodedIP}
	if fn != nil {
		fn(c)
	}
	return c
}

// WithoutIP omits the chassis IP address property.
func (c *ChassisBuilder) WithoutIP() *ChassisBuilder {
	c.omitIP = true
	return c
}

// AddModule adds a real module in the given slot.
func (c *ChassisBuilder) AddModule(name string, slot int) *ModuleBuilder {
	m := &ModuleBuilder{
		name:    name,
		guid:    sysdef.KindModule.GUID(),
		slot:    fmt.Sprint(slot),
		product: "42",
		vendor:  "4244",
		files: []DependentFileSpec{{
			Path:        `C:\Users\Public\Documents\National Instruments\NI VeriStand 2016\Custom Devices\SLSC Plug-ins\NI SLSC-12001\Module.xml`,
			Destination: `c:\ni-rt\NIVeriStand\Custom Devices\SLSC Plug-ins\NI SLSC-12001\Module.xml`,
		}},
	}
	c.modules = append(c.modules, m)
	return m
}

// AddFiller adds a filler module in the given slot.
func (c *ChassisBuilder) AddFiller(name string, slot int) *ModuleBuilder {
	m := &ModuleBuilder{
		name:   name,
		guid:   sysdef.KindLegacyFillerModule.GUID(),
		slot:   fmt.Sprint(slot),
		filler: true,
	}
	c.modules = append(c.modules, m)
	return m
}

func (c *ChassisBuilder) render(w *strings.Builder) {
	fmt.Fprintf(w, "            <Section Name=\"%s\" TypeGUID=\"%s\">\n", esc(c.name), sysdef.KindLegacyChassis.GUID())
	w.WriteString("              <Description />\n              <Properties>\n")
	if !c.omitIP {
		fmt.Fprintf(w, "                <Property Name=\"%s\"><BinaryString>%s</BinaryString></Property>\n", ChassisIPProperty, esc(c.encodedIP))
	}
	w.WriteString("              </Properties>\n              <Errors />\n")
	for _, m := range c.modules {
		m.render(w)
	}
	w.WriteString("            </Section>\n")
}

// DependentFileSpec describes one DependentFile property value.
type DependentFileSpec struct {
	Path        string
	Destination string
}

// ModuleBuilder builds one module section inside a chassis.
type ModuleBuilder struct {
	name     string
	guid     string
	slot     string
	omitSlot bool
	filler   bool
	product  string
	vendor   string
	files    []DependentFileSpec
	extra    []string
}

// WithGUID overrides the module's TypeGUID.
func (m *ModuleBuilder) WithGUID(guid string) *ModuleBuilder {
	m.guid = guid
	return m
}

// WithSlotText stores text verbatim as the slot value.
func (m *ModuleBuilder) WithSlotText(text string) *ModuleBuilder {
	m.slot = text
	return m
}

// WithoutSlot omits the slot property.
func (m *ModuleBuilder) WithoutSlot() *ModuleBuilder {
	m.omitSlot = true
	return m
}

// WithProduct sets the productNum value; "" omits the property.
func (m *ModuleBuilder) WithProduct(text string) *ModuleBuilder {
	m.product = text
	return m
}

// WithVendor sets the vendorNum value; "" omits the property.
func (m *ModuleBuilder) WithVendor(text string) *ModuleBuilder {
	m.vendor = text
	return m
}

// WithFiles replaces the module's dependent files.
func (m *ModuleBuilder) WithFiles(files ...DependentFileSpec) *ModuleBuilder {
	m.files = files
	return m
}

// WithStringProperty adds an extra String property.
func (m *ModuleBuilder) WithStringProperty(name, value string) *ModuleBuilder {
	m.extra = append(m.extra, fmt.Sprintf("<Property Name=\"%s\"><String>%s</String></Property>", esc(name), esc(value)))
	return m
}

func (m *ModuleBuilder) render(w *strings.Builder) {
	fmt.Fprintf(w, "              <Section Name=\"%s\" TypeGUID=\"%s\">\n", esc(m.name), m.guid)
	w.WriteString("                <Description />\n                <Properties>\n")
	if !m.omitSlot {
		fmt.Fprintf(w, "                  <Property Name=\"%s\"><I32>%s</I32></Property>\n", SlotProperty, esc(m.slot))
	}
	if !m.filler {
		if m.product != "" {
			fmt.Fprintf(w, "                  <Property Name=\"%s\"><I32>%s</I32></Property>\n", ProductProperty, esc(m.product))
		}
		if m.vendor != "" {
			fmt.Fprintf(w, "                  <Property Name=\"%s\"><I32>%s</I32></Property>\n", VendorProperty, esc(m.vendor))
		}
		for i, f := range m.files {
			fmt.Fprintf(w, "                  <Property Name=\"%s %d\"><DependentFile Type=\"To Target\" Path=\"%s\"><RTDestination>%s</RTDestination></DependentFile></Property>\n",
				ModuleFileProp, i, esc(f.Path), esc(f.Destination))
		}
		for _, e := range m.extra {
			w.WriteString("                  " + e + "\n")
		}
	}
	w.WriteString("                </Properties>\n                <Errors />\n")
	if m.filler {
		w.WriteString("                <Section Name=\"Placeholder\" TypeGUID=\"00000000-0000-0000-0000-000000000000\"><Description /><Properties /><Errors /></Section>\n")
	}
	w.WriteString("              </Section>\n")
}

func esc(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
