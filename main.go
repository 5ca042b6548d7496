package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/obstaclesync/assets"
	"github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/network"
	"github.com/automoto/obstaclesync/scenes"
	"github.com/automoto/obstaclesync/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.Sandbox {
		g.scene = scenes.NewSandboxScene(g, config.Sandbox.DefaultLevel)
	} else {
		g.scene = scenes.NewNetworkedScene(g, network.NewClient(config.Net.BatchBuffer))
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Saved settings first so flags can override them
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	assetDir := flag.String("assets", "assets", "directory holding images/ and audio/")
	flag.StringVar(&config.Net.Address, "addr", config.Net.Address, "server address (host:port)")
	flag.StringVar(&config.Net.PlayerName, "name", config.Net.PlayerName, "player name sent on join")
	flag.BoolVar(&config.Debug.Sandbox, "sandbox", config.Debug.Sandbox, "run a local level instead of connecting")
	flag.StringVar(&config.Sandbox.DefaultLevel, "level", config.Sandbox.DefaultLevel, "sandbox level name")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", config.Debug.ShowHitboxes, "outline hitboxes")
	flag.BoolVar(&config.Debug.ShowStats, "stats", config.Debug.ShowStats, "show the stats overlay")
	flag.Parse()

	assets.LoadAssets(os.DirFS(*assetDir))
	systems.PreloadSFX()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("obstaclesync")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
