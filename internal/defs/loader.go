// internal/defs/loader.go
package defs

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"

	"ender-sword/internal/errors"
)

// LoadPowerUps reads a catalog override from a JSON file. The file must list
// each of the four power-ups exactly once; order in the file is store order.
func LoadPowerUps(path string) ([]PowerUpDefinition, error) {
	file, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "power-up definitions file not found").WithMeta("path", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read power-up definitions file")
	}

	var catalog []PowerUpDefinition
	if err := json.Unmarshal(file, &catalog); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to unmarshal power-up definitions")
	}

	if err := ValidatePowerUps(catalog); err != nil {
		return nil, errors.Wrapf(err, "power-up catalog %s", path)
	}

	slog.Info("loaded power-up definitions", "path", path, "count", len(catalog))
	return catalog, nil
}

func ValidatePowerUps(catalog []PowerUpDefinition) error {
	known := map[PowerUpID]bool{
		PowerUpDash:     false,
		PowerUpRecovery: false,
		PowerUpPoison:   false,
		PowerUpUltra:    false,
	}
	if len(catalog) != len(known) {
		return errors.InvalidArgumentf("expected %d power-ups, got %d", len(known), len(catalog))
	}
	for i, def := range catalog {
		seen, ok := known[def.ID]
		if !ok {
			return errors.InvalidArgumentf("unknown power-up %q", def.ID).WithMeta("index", i)
		}
		if seen {
			return errors.InvalidArgumentf("duplicate power-up %q", def.ID).WithMeta("index", i)
		}
		known[def.ID] = true
		if def.Cost < 0 {
			return errors.InvalidArgumentf("power-up %q has negative cost", def.ID)
		}
		if def.MaxLevel < 1 {
			return errors.InvalidArgumentf("power-up %q needs max_level >= 1", def.ID)
		}
		if def.Level != 0 {
			return errors.InvalidArgumentf("power-up %q must start at level 0", def.ID)
		}
	}
	return nil
}
