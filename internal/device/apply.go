package device

import (
	"github.com/joshuapare/nicpower/internal/buf"
	"github.com/joshuapare/nicpower/internal/logger"
)

// Encoding selects how power values are written.
type Encoding int

const (
	// EncodingBinary writes 4-byte little-endian REG_BINARY values through
	// the PowerSettings key, as the driver INFs store them.
	EncodingBinary Encoding = iota
	// EncodingDword writes REG_DWORD values through the instance key.
	EncodingDword
)

// FieldResult is the outcome of writing one power value.
type FieldResult struct {
	Name string
	Old  uint32
	New  uint32
	Err  error
}

// Apply writes target to inst field by field. Each write is independent:
// a failure does not stop the remaining fields and earlier writes are not
// rolled back. inst.Power is updated for the fields that were written.
func Apply(inst *Instance, target PowerSettings, enc Encoding) []FieldResult {
	results := make([]FieldResult, 0, len(powerFields))
	for _, f := range powerFields {
		res := FieldResult{Name: f.name, Old: *f.ptr(&inst.Power), New: *f.ptr(&target)}
		switch enc {
		case EncodingDword:
			res.Err = inst.Key.WriteSubkeyU32(PowerSettingsKey, f.name, res.New)
		default:
			res.Err = inst.PowerKey.WriteBinary(f.name, buf.LE32(res.New))
		}
		if res.Err != nil {
			logger.Warn("power value not written", "path", inst.PowerKey.Path(), "name", f.name, "err", res.Err)
		} else {
			*f.ptr(&inst.Power) = res.New
			logger.Debug("power value written", "path", inst.PowerKey.Path(), "name", f.name, "value", res.New)
		}
		results = append(results, res)
	}
	return results
}

// Failed returns the results that carry an error.
func Failed(results []FieldResult) []FieldResult {
	var failed []FieldResult
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
