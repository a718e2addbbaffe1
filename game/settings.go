package game

import (
	"fmt"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/dev"
)

// LoadSettings reads the remembered advanced-mode values. If either slot holds
// something the display cannot show, both slots are reset to the advanced defaults.
func LoadSettings(store dev.Store, cfg config.Settings) (config.Preset, bool, error) {
	health, herr := store.Get(cfg.HealthSlot)
	shields, serr := store.Get(cfg.ShieldSlot)
	if herr == nil && serr == nil && health <= MaxValue && shields <= MaxValue {
		return config.Preset{Health: int(health), Shields: int(shields)}, false, nil
	}

	preset := config.Preset{
		Health:  Clamp(cfg.Advanced.Health),
		Shields: Clamp(cfg.Advanced.Shields),
	}
	if err := SaveSetting(store, cfg.HealthSlot, preset.Health); err != nil {
		return preset, true, err
	}
	if err := SaveSetting(store, cfg.ShieldSlot, preset.Shields); err != nil {
		return preset, true, err
	}
	return preset, true, nil
}

// SaveSetting stores v in the slot at addr.
func SaveSetting(store dev.Store, addr uint16, v int) error {
	if v < MinValue || v > MaxValue {
		return dev.ErrOutOfRange
	}
	if err := store.Set(addr, byte(v)); err != nil {
		return fmt.Errorf("write slot %d: %w", addr, err)
	}
	return nil
}
