package systems

import (
	"encoding/json"
	"log"
	"math"

	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	VolumeIndex   int     `json:"volumeIndex"`
	ShowHitboxes  bool    `json:"showHitboxes"`
	ShowStats     bool    `json:"showStats"`
	ServerAddress string  `json:"serverAddress"`
	LastLevel     string  `json:"lastLevel"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the runtime toggles of a scene together with the
// startup choices that were in effect.
func SaveCurrentSettings(s *components.SettingsData, level string) {
	saved := &SavedSettings{
		SFXVolume:     GetSFXVolume(),
		VolumeIndex:   s.VolumeIndex,
		ShowHitboxes:  s.ShowHitboxes,
		ShowStats:     s.ShowStats,
		ServerAddress: cfg.Net.Address,
		LastLevel:     level,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings before any scene exists. Command
// line flags are parsed afterwards and win over saved values.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalSFXVolume = saved.SFXVolume
	cfg.Debug.ShowHitboxes = saved.ShowHitboxes
	cfg.Debug.ShowStats = saved.ShowStats
	if saved.ServerAddress != "" {
		cfg.Net.Address = saved.ServerAddress
	}
	if saved.LastLevel != "" {
		cfg.Sandbox.DefaultLevel = saved.LastLevel
	}
}

// GetOrCreateSettings returns the settings singleton, seeded from the
// global config.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ShowHitboxes: cfg.Debug.ShowHitboxes,
			ShowStats:    cfg.Debug.ShowStats,
			VolumeIndex:  volumeIndex(GetSFXVolume()),
		})
	}
	return components.Settings.Get(entry)
}

// volumeIndex picks the volume step closest to v.
func volumeIndex(v float64) int {
	best := 0
	for i, step := range cfg.Settings.VolumeSteps {
		if math.Abs(step-v) < math.Abs(cfg.Settings.VolumeSteps[best]-v) {
			best = i
		}
	}
	return best
}
