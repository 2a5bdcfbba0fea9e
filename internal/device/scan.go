package device

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/nicpower/internal/logger"
	"github.com/joshuapare/nicpower/pkg/reg"
)

// Instance is one device instance key with its driver metadata and power
// settings. It owns both keys until Close.
type Instance struct {
	ID       int
	Name     string   // subkey name under the class key, e.g. "0001"
	Key      *reg.Key // the instance key
	PowerKey *reg.Key // Key\PowerSettings
	Driver   Driver
	Power    PowerSettings
}

// Description is the operator-facing one-line summary plus key path.
func (i *Instance) Description() string {
	return fmt.Sprintf("#%d %s | version: %s | date: %s | provider name: %s\n(registry key path: %s)",
		i.ID, i.Driver.Desc, i.Driver.Version, i.Driver.Date, i.Driver.ProviderName, i.Key.Path())
}

// Summary is the JSON view of an Instance.
type Summary struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Path   string        `json:"path"`
	Driver Driver        `json:"driver"`
	Power  PowerSettings `json:"power_settings"`
}

// Summary returns the JSON view of i.
func (i *Instance) Summary() Summary {
	return Summary{ID: i.ID, Name: i.Name, Path: i.Key.Path(), Driver: i.Driver, Power: i.Power}
}

// Close releases both keys.
func (i *Instance) Close() error {
	return errors.Join(i.PowerKey.Close(), i.Key.Close())
}

// CloseAll closes every instance, ignoring close failures.
func CloseAll(instances []*Instance) {
	for _, inst := range instances {
		_ = inst.Close()
	}
}

// Scanner collects device instances under a class key.
type Scanner struct {
	// Open is passed to every OpenKeyWith call. Nil opens read+write.
	Open *reg.OpenOptions
	// Log receives one warning per skipped instance. Nil uses logger.L.
	Log *slog.Logger
}

func (s *Scanner) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return logger.L
}

// Scan enumerates the subkeys of class and returns the instances whose
// driver and power values could all be read. Instances that fail are logged
// and skipped. Only a failure to count the subkeys is returned.
func (s *Scanner) Scan(class *reg.Key) ([]*Instance, error) {
	count, err := class.SubkeyCount()
	if err != nil {
		return nil, err
	}
	s.log().Debug("scanning device class", "path", class.Path(), "subkeys", count)

	instances := make([]*Instance, 0, count)
	for i := uint32(0); i < count; i++ {
		name, err := class.SubkeyName(i)
		if err != nil {
			s.log().Warn("skipping device instance", "index", i, "err", err)
			continue
		}
		inst, err := s.scanOne(class, name)
		if err != nil {
			s.log().Warn("skipping device instance", "name", name, "err", err)
			continue
		}
		inst.ID = len(instances)
		instances = append(instances, inst)
	}
	return instances, nil
}

func (s *Scanner) scanOne(class *reg.Key, name string) (*Instance, error) {
	key := reg.OpenKeyWith(class, name, s.Open)
	defer key.Close()
	if !key.Valid() {
		return nil, fmt.Errorf("could not open a key '%s': %w", key.Path(), key.Err())
	}

	pkey := reg.OpenKeyWith(key, PowerSettingsKey, s.Open)
	defer pkey.Close()
	if !pkey.Valid() {
		return nil, fmt.Errorf("could not open a key '%s': %w", pkey.Path(), pkey.Err())
	}

	power, err := pkey.ReadU32Values(PowerValueNames)
	if err != nil {
		return nil, err
	}
	driver, err := key.ReadStringValues(DriverValueNames)
	if err != nil {
		return nil, err
	}

	// Ownership moves to the instance; the deferred Closes become no-ops.
	return &Instance{
		Name:     name,
		Key:      key.Move(),
		PowerKey: pkey.Move(),
		Driver:   driverFrom(driver),
		Power:    powerFrom(power),
	}, nil
}
