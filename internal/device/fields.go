package device

import "fmt"

// PowerSettingsKey is the instance subkey holding the power tunables.
const PowerSettingsKey = "PowerSettings"

// Driver is the driver metadata stored on a device instance key.
type Driver struct {
	Desc         string `json:"desc"`
	Version      string `json:"version"`
	Date         string `json:"date"`
	ProviderName string `json:"provider_name"`
}

// DriverValueNames lists the REG_SZ values read into a Driver, in field order.
var DriverValueNames = []string{"DriverDesc", "DriverVersion", "DriverDate", "ProviderName"}

func driverFrom(vals []string) Driver {
	return Driver{Desc: vals[0], Version: vals[1], Date: vals[2], ProviderName: vals[3]}
}

// PowerSettings are the idle tunables under the PowerSettings subkey.
type PowerSettings struct {
	ConservationIdleTime uint32 `json:"conservation_idle_time"`
	PerformanceIdleTime  uint32 `json:"performance_idle_time"`
	IdlePowerState       uint32 `json:"idle_power_state"`
}

// TargetPowerSettings disables idle power-down.
var TargetPowerSettings = PowerSettings{
	ConservationIdleTime: 0xffffffff,
	PerformanceIdleTime:  0xffffffff,
	IdlePowerState:       0x3,
}

type powerField struct {
	name  string // registry value name
	label string // operator-facing label, right-aligned
	ptr   func(*PowerSettings) *uint32
}

var powerFields = []powerField{
	{"ConservationIdleTime", "Conservation Idle Time", func(p *PowerSettings) *uint32 { return &p.ConservationIdleTime }},
	{"PerformanceIdleTime", " Performance Idle Time", func(p *PowerSettings) *uint32 { return &p.PerformanceIdleTime }},
	{"IdlePowerState", "      Idle Power State", func(p *PowerSettings) *uint32 { return &p.IdlePowerState }},
}

// PowerValueNames lists the u32 values read into PowerSettings, in field order.
var PowerValueNames = func() []string {
	names := make([]string, len(powerFields))
	for i, f := range powerFields {
		names[i] = f.name
	}
	return names
}()

func powerFrom(vals []uint32) PowerSettings {
	var p PowerSettings
	for i, f := range powerFields {
		*f.ptr(&p) = vals[i]
	}
	return p
}

// Values returns the settings in PowerValueNames order.
func (p PowerSettings) Values() []uint32 {
	vals := make([]uint32, len(powerFields))
	for i, f := range powerFields {
		vals[i] = *f.ptr(&p)
	}
	return vals
}

// String renders one "label = 0x%08x" line per field.
func (p PowerSettings) String() string {
	var s string
	for _, f := range powerFields {
		s += fmt.Sprintf("%s = 0x%08x\n", f.label, *f.ptr(&p))
	}
	return s
}

// FormatChange renders one "label = old -> new" line per field.
func FormatChange(from, to PowerSettings) string {
	var s string
	for _, f := range powerFields {
		s += fmt.Sprintf("%s = 0x%08x -> 0x%08x\n", f.label, *f.ptr(&from), *f.ptr(&to))
	}
	return s
}
