package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles the player can change at runtime. It is
// saved whenever one of them changes.
type SettingsData struct {
	ShowHitboxes bool
	ShowStats    bool
	VolumeIndex  int
}

var Settings = donburi.NewComponentType[SettingsData]()
