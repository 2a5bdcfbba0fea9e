package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nicpower/internal/testutil/fakereg"
	"github.com/joshuapare/nicpower/pkg/types"
)

func scanOneInstance(t *testing.T, f *fakereg.Registry) *Instance {
	t.Helper()
	s, _ := quietScanner()
	instances, err := s.Scan(openClass(t, f))
	require.NoError(t, err)
	require.Len(t, instances, 1)
	t.Cleanup(func() { CloseAll(instances) })
	return instances[0]
}

func TestApplyBinary(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	inst := scanOneInstance(t, f)

	results := Apply(inst, TargetPowerSettings, EncodingBinary)
	require.Len(t, results, 3)
	assert.Empty(t, Failed(results))
	assert.Equal(t, FieldResult{Name: "IdlePowerState", Old: 0x4, New: 0x3}, results[2])
	assert.Equal(t, TargetPowerSettings, inst.Power)

	ps := classKeyPath + `\0001\PowerSettings`
	v, ok := f.Value(ps, "ConservationIdleTime")
	require.True(t, ok)
	assert.Equal(t, types.REG_BINARY, v.Type)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, v.Data)

	v, ok = f.Value(ps, "IdlePowerState")
	require.True(t, ok)
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0x00}, v.Data)

	// The binary values read back through the u32 path.
	got, err := inst.PowerKey.ReadU32Values(PowerValueNames)
	require.NoError(t, err)
	assert.Equal(t, TargetPowerSettings.Values(), got)
}

func TestApplyDword(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	inst := scanOneInstance(t, f)

	results := Apply(inst, TargetPowerSettings, EncodingDword)
	assert.Empty(t, Failed(results))

	v, ok := f.Value(classKeyPath+`\0001\PowerSettings`, "PerformanceIdleTime")
	require.True(t, ok)
	assert.Equal(t, types.REG_DWORD, v.Type)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, v.Data)
}

func TestApplyPartialFailure(t *testing.T) {
	f := fakereg.New()
	addInstance(f, intel)
	f.FailSet(classKeyPath+`\0001\PowerSettings`, "PerformanceIdleTime", types.StatusAccessDenied)
	inst := scanOneInstance(t, f)

	results := Apply(inst, TargetPowerSettings, EncodingBinary)
	require.Len(t, results, 3)

	failed := Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "PerformanceIdleTime", failed[0].Name)
	var re *types.Error
	require.ErrorAs(t, failed[0].Err, &re)
	assert.Equal(t, "Failed to set value 'PerformanceIdleTime'", re.Msg)

	assert.Equal(t, PowerSettings{
		ConservationIdleTime: 0xffffffff,
		PerformanceIdleTime:  intel.power.PerformanceIdleTime,
		IdlePowerState:       0x3,
	}, inst.Power)
}
