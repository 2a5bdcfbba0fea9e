package device

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nicpower/internal/testutil/fakereg"
	"github.com/joshuapare/nicpower/pkg/reg"
	"github.com/joshuapare/nicpower/pkg/types"
)

const hklm = "HKEY_LOCAL_MACHINE"

var classKeyPath = hklm + reg.Separator + ClassPath(NetworkAdapterClass)

type fixture struct {
	name   string
	driver Driver
	power  PowerSettings
}

func addInstance(f *fakereg.Registry, fx fixture) {
	path := classKeyPath + reg.Separator + fx.name
	f.SetString(path, "DriverDesc", fx.driver.Desc)
	f.SetString(path, "DriverVersion", fx.driver.Version)
	f.SetString(path, "DriverDate", fx.driver.Date)
	f.SetString(path, "ProviderName", fx.driver.ProviderName)
	ps := path + reg.Separator + PowerSettingsKey
	f.SetU32(ps, "ConservationIdleTime", fx.power.ConservationIdleTime)
	f.SetU32(ps, "PerformanceIdleTime", fx.power.PerformanceIdleTime)
	f.SetU32(ps, "IdlePowerState", fx.power.IdlePowerState)
}

var intel = fixture{
	name:   "0001",
	driver: Driver{Desc: "Intel(R) Ethernet Connection I219-V", Version: "12.19.2.45", Date: "6-21-2022", ProviderName: "Intel"},
	power:  PowerSettings{ConservationIdleTime: 0x1e, PerformanceIdleTime: 0x258, IdlePowerState: 0x4},
}

var realtek = fixture{
	name:   "0007",
	driver: Driver{Desc: "Realtek PCIe GbE Family Controller", Version: "10.68.815.2023", Date: "8-15-2023", ProviderName: "Realtek"},
	power:  PowerSettings{ConservationIdleTime: 0x3c, PerformanceIdleTime: 0x12c, IdlePowerState: 0x2},
}

func openClass(t *testing.T, f *fakereg.Registry) *reg.Key {
	t.Helper()
	root, err := reg.RootOn(f, reg.RootLocalMachine)
	require.NoError(t, err)
	class, err := OpenClass(root, NetworkAdapterClass, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = class.Close() })
	return class
}

func quietScanner() (*Scanner, *bytes.Buffer) {
	var out bytes.Buffer
	return &Scanner{Log: slog.New(slog.NewTextHandler(&out, nil))}, &out
}

func TestClassPath(t *testing.T) {
	assert.Equal(t,
		`SYSTEM\CurrentControlSet\Control\Class\{4d36e96c-e325-11ce-bfc1-08002be10318}`,
		ClassPath(NetworkAdapterClass))
}

func TestParseClass(t *testing.T) {
	for _, in := range []string{
		"4d36e96c-e325-11ce-bfc1-08002be10318",
		"{4D36E96C-E325-11CE-BFC1-08002BE10318}",
		" {4d36e96c-e325-11ce-bfc1-08002be10318} ",
	} {
		id, err := ParseClass(in)
		require.NoError(t, err, in)
		assert.Equal(t, NetworkAdapterClass, id)
	}

	_, err := ParseClass("not-a-guid")
	assert.Error(t, err)
}

func TestOpenClassMissing(t *testing.T) {
	f := fakereg.New()
	root, err := reg.RootOn(f, reg.RootLocalMachine)
	require.NoError(t, err)

	class, err := OpenClass(root, NetworkAdapterClass, nil)
	assert.Nil(t, class)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `could not open a key HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Control\Class\{4d36e96c`)
	assert.ErrorIs(t, err, types.StatusFileNotFound)
}

func TestScanEmptyClass(t *testing.T) {
	f := fakereg.New()
	f.CreateKey(classKeyPath)
	s, _ := quietScanner()

	instances, err := s.Scan(openClass(t, f))
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestScan(t *testing.T) {
	f := fakereg.New()
	addInstance(f, realtek)
	addInstance(f, intel)
	s, _ := quietScanner()

	instances, err := s.Scan(openClass(t, f))
	require.NoError(t, err)
	require.Len(t, instances, 2)
	defer CloseAll(instances)

	first := instances[0]
	assert.Equal(t, 0, first.ID)
	assert.Equal(t, "0001", first.Name)
	assert.Equal(t, intel.driver, first.Driver)
	assert.Equal(t, intel.power, first.Power)
	assert.True(t, first.Key.Owned())
	assert.Equal(t, classKeyPath+`\0001`, first.Key.Path())
	assert.Equal(t, classKeyPath+`\0001\PowerSettings`, first.PowerKey.Path())

	assert.Equal(t, 1, instances[1].ID)
	assert.Equal(t, realtek.driver, instances[1].Driver)
}

func TestScanSkipsBrokenInstances(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	addInstance(f, realtek)

	// No PowerSettings subkey.
	f.SetString(classKeyPath+`\0002`, "DriverDesc", "Virtual Adapter")
	// Missing a driver string.
	addInstance(f, fixture{name: "0003", driver: Driver{Desc: "x"}})
	f.FailValue(classKeyPath+`\0003`, "DriverDate", types.StatusFileNotFound)
	// Not readable at all, like the class "Properties" key.
	f.CreateKey(classKeyPath + `\Properties`)
	f.FailOpen(classKeyPath+`\Properties`, types.StatusAccessDenied)

	s, logs := quietScanner()
	instances, err := s.Scan(openClass(t, f))
	require.NoError(t, err)
	defer CloseAll(instances)

	require.Len(t, instances, 2)
	assert.Equal(t, "0001", instances[0].Name)
	assert.Equal(t, "0007", instances[1].Name)
	assert.Equal(t, 1, instances[1].ID, "IDs are dense over kept instances")

	assert.Contains(t, logs.String(), "PowerSettings")
	assert.Contains(t, logs.String(), "Failed to get multiple values")
	assert.Contains(t, logs.String(), "Properties")

	// Only the two kept instances hold handles (two each) plus the class key.
	assert.Equal(t, 5, f.OpenHandles())
}

func TestScanSkipsEnumFailures(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	f.FailEnum(classKeyPath, types.StatusKeyDeleted)

	s, logs := quietScanner()
	instances, err := s.Scan(openClass(t, f))
	require.NoError(t, err)
	assert.Empty(t, instances)
	assert.Contains(t, logs.String(), "Failed to get subkey name with index '0'")
}

func TestScanCountFailureIsFatal(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	f.FailInfo(classKeyPath, types.StatusNotSupported)

	s, _ := quietScanner()
	instances, err := s.Scan(openClass(t, f))
	assert.Nil(t, instances)
	var re *types.Error
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Failed to get subkeys count", re.Msg)
}

func TestInstanceCloseReleasesHandles(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	s, _ := quietScanner()

	instances, err := s.Scan(openClass(t, f))
	require.NoError(t, err)
	require.Len(t, instances, 1)
	require.NoError(t, instances[0].Close())
	assert.Equal(t, 1, f.OpenHandles(), "only the class key remains")
}

func TestDescription(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	s, _ := quietScanner()

	instances, err := s.Scan(openClass(t, f))
	require.NoError(t, err)
	defer CloseAll(instances)

	assert.Equal(t,
		"#0 Intel(R) Ethernet Connection I219-V | version: 12.19.2.45 | date: 6-21-2022 | provider name: Intel\n"+
			"(registry key path: "+classKeyPath+`\0001`+")",
		instances[0].Description())

	sum := instances[0].Summary()
	assert.Equal(t, classKeyPath+`\0001`, sum.Path)
	assert.Equal(t, intel.power, sum.Power)
}

func TestPowerSettingsFormatting(t *testing.T) {
	p := PowerSettings{ConservationIdleTime: 0x1e, PerformanceIdleTime: 0x258, IdlePowerState: 0x4}
	assert.Equal(t,
		"Conservation Idle Time = 0x0000001e\n"+
			" Performance Idle Time = 0x00000258\n"+
			"      Idle Power State = 0x00000004\n",
		p.String())

	assert.Equal(t,
		"Conservation Idle Time = 0x0000001e -> 0xffffffff\n"+
			" Performance Idle Time = 0x00000258 -> 0xffffffff\n"+
			"      Idle Power State = 0x00000004 -> 0x00000003\n",
		FormatChange(p, TargetPowerSettings))

	assert.Equal(t, []uint32{0x1e, 0x258, 0x4}, p.Values())
	assert.Equal(t, []string{"ConservationIdleTime", "PerformanceIdleTime", "IdlePowerState"}, PowerValueNames)
}
