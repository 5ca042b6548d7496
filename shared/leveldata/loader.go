package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// ObstacleLayer is the object group obstacles are read from.
const ObstacleLayer = "Obstacles"

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != ObstacleLayer {
			continue
		}
		for _, o := range og.Objects {
			if o.Name == "" {
				return nil, fmt.Errorf("%s: object %d has no obstacle name", tmxPath, o.ID)
			}
			scale := o.Properties.GetFloat("scale")
			if scale == 0 {
				scale = 1
			}
			level.Obstacles = append(level.Obstacles, Placement{
				IDString:    o.Name,
				X:           o.X,
				Y:           o.Y,
				Rotation:    o.Properties.GetFloat("rotation"),
				Orientation: o.Properties.GetInt("orientation"),
				Variation:   o.Properties.GetInt("variation"),
				Scale:       scale,
				Destroyed:   o.Properties.GetBool("destroyed"),
				DoorOffset:  o.Properties.GetInt("doorOffset"),
			})
		}
	}

	// Sort top-to-bottom, left-to-right so object ids are stable
	sort.SliceStable(level.Obstacles, func(i, j int) bool {
		a, b := level.Obstacles[i], level.Obstacles[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
