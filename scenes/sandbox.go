package scenes

import (
	"fmt"
	"image/color"
	"log"
	"path"
	"sync"

	"github.com/automoto/obstaclesync/assets"
	"github.com/automoto/obstaclesync/shared/leveldata"
	"github.com/automoto/obstaclesync/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/obstaclesync/config"
)

// SandboxScene runs a level without a server. A Feed stands in for the
// server and the mouse and keyboard edit its state.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	once         sync.Once
}

func NewSandboxScene(sc SceneChanger, levelName string) *SandboxScene {
	return &SandboxScene{sceneChanger: sc, levelName: levelName}
}

func (ss *SandboxScene) Update() {
	ss.once.Do(ss.configure)
	if ss.ecs == nil {
		return
	}
	ss.ecs.Update()
}

func (ss *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SandboxScene) configure() {
	level, feed, err := loadSandbox(ss.levelName)
	if err != nil {
		log.Printf("[sandbox] %v", err)
		return
	}

	src := systems.NewSandboxSource(feed)
	ss.ecs = newObstacleWorld(src, src, level.Name, float64(level.Width), float64(level.Height))
	log.Printf("[sandbox] level %s: %d obstacles", level.Name, feed.Len())
}

func loadSandbox(name string) (*leveldata.Level, *leveldata.Feed, error) {
	tmx := path.Join(cfg.Sandbox.LevelDir, name+".tmx")
	level, err := leveldata.LoadLevel(assets.Levels(), tmx)
	if err != nil {
		return nil, nil, err
	}
	feed, err := leveldata.NewFeed(level, cfg.Obstacles)
	if err != nil {
		return nil, nil, fmt.Errorf("level %s: %w", name, err)
	}
	return level, feed, nil
}
