package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/obstaclesync/components"
	"github.com/automoto/obstaclesync/network"
	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/obstaclesync/config"
)

// reconnectDelay is how many ticks the scene waits before dialing again.
const reconnectDelay = 180

// NetworkedScene renders the obstacles a server streams to it.
type NetworkedScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	once         sync.Once

	lastState network.ClientState
	retryIn   int
}

func NewNetworkedScene(sc SceneChanger, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state != ns.lastState {
		if err := ns.netClient.LastError(); err != nil && state == network.StateError {
			log.Printf("[networked] %s: %v", state, err)
		} else {
			log.Printf("[networked] %s", state)
		}
		ns.lastState = state
		if state == network.StateDisconnected || state == network.StateError {
			ns.retryIn = reconnectDelay
		}
	}

	if state == network.StateDisconnected || state == network.StateError {
		ns.retryIn--
		if ns.retryIn <= 0 {
			ns.reconnect()
		}
	}

	ns.ecs.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecs == nil {
		return
	}
	ns.ecs.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	send := systems.RemoteEditor(func(msg any) error {
		if ns.netClient.State() != network.StateJoinedGame {
			return nil
		}
		return ns.netClient.SendMessage(msg)
	})
	ns.ecs = newObstacleWorld(ns.netClient, send, cfg.Net.Address, bitstream.MapMax, bitstream.MapMax)
	ns.lastState = ns.netClient.State()
	ns.connect()
}

func (ns *NetworkedScene) connect() {
	log.Printf("[networked] connecting to %s", cfg.Net.Address)
	ns.netClient.Connect(cfg.Net.Address, cfg.Net.Version, cfg.Net.PlayerName)
}

// reconnect drops every object before dialing again. The server sends full
// updates for everything on join.
func (ns *NetworkedScene) reconnect() {
	ns.netClient.Disconnect()
	ns.netClient.DrainBatches()
	ns.netClient.DrainHitEvents()
	if syncEntry, ok := components.Sync.First(ns.ecs.World); ok {
		components.Sync.Get(syncEntry).Pool.Clear()
	}
	ns.connect()
}
