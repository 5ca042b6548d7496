package core

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/leveldata"
)

// ServerLevel is the authoritative obstacle state of the level being served.
type ServerLevel struct {
	Name string
	Feed *leveldata.Feed
}

// NewServerLevel assigns ids to the level's placements.
func NewServerLevel(level *leveldata.Level) (*ServerLevel, error) {
	feed, err := leveldata.NewFeed(level, config.Obstacles)
	if err != nil {
		return nil, err
	}

	log.Printf("[server] loaded level %s: %d obstacles, %dx%d map",
		level.Name, feed.Len(), level.Width, level.Height)

	return &ServerLevel{Name: level.Name, Feed: feed}, nil
}

// LoadServerLevel loads one .tmx level from the levels directory of assetsDir.
func LoadServerLevel(assetsDir, name string) (*ServerLevel, error) {
	return loadServerLevel(os.DirFS(assetsDir), name)
}

func loadServerLevel(fsys fs.FS, name string) (*ServerLevel, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, "levels")
	if err != nil {
		return nil, fmt.Errorf("load all levels: %w", err)
	}
	level, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("no level %q (have %v)", name, names)
	}
	return NewServerLevel(level)
}
