package systems

import (
	"log"
	"math"

	"github.com/automoto/obstaclesync/components"
	cfg "github.com/automoto/obstaclesync/config"
	"github.com/automoto/obstaclesync/shared/leveldata"
	"github.com/automoto/obstaclesync/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// ObstacleEditor receives the edits made with the mouse and keyboard.
type ObstacleEditor interface {
	Do(a messages.ObstacleAction) error
}

// SandboxSource plays the server for the sandbox scene. Every drain emits
// one batch with whatever the feed accumulated since the last one.
type SandboxSource struct {
	Feed *leveldata.Feed
	hits []messages.ObstacleHitEvent
}

func NewSandboxSource(feed *leveldata.Feed) *SandboxSource {
	return &SandboxSource{Feed: feed}
}

func (s *SandboxSource) DrainBatches() []messages.ObjectUpdateBatch {
	batch, err := s.Feed.Batch()
	if err != nil {
		log.Printf("[sandbox] %v", err)
		return nil
	}
	if len(batch.Updates) == 0 && len(batch.Deleted) == 0 {
		return nil
	}
	return []messages.ObjectUpdateBatch{batch}
}

func (s *SandboxSource) DrainHitEvents() []messages.ObstacleHitEvent {
	out := s.hits
	s.hits = nil
	return out
}

// Do applies an edit straight to the feed.
func (s *SandboxSource) Do(a messages.ObstacleAction) error {
	if a.Kind == messages.ActionResend {
		s.Feed.Resend()
		return nil
	}
	hit, err := s.Feed.Apply(a)
	if err != nil {
		return err
	}
	if hit != nil {
		s.hits = append(s.hits, *hit)
	}
	return nil
}

// RemoteEditor forwards edits to a server.
type RemoteEditor func(msg any) error

func (send RemoteEditor) Do(a messages.ObstacleAction) error {
	return send(a)
}

// NewEditInputSystem returns the system that turns mouse and keyboard input
// into edits of the obstacle under the cursor:
//
//	left click    hit it
//	right click   destroy it
//	D             open or close a door (shift swings the other way)
//	+ / -         grow or shrink it
//	Delete        remove it
//	R             drop every object and ask for them again
func NewEditInputSystem(ed ObstacleEditor) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		editorEntry, ok := components.Editor.First(e.World)
		if !ok {
			return
		}
		editor := components.Editor.Get(editorEntry)
		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		mx, my := ebiten.CursorPosition()
		cursor := ScreenToWorld(camera, float64(mx), float64(my))

		editor.Hovered = 0
		hovered, found := ObstacleAt(e, cursor)
		if found {
			editor.Hovered = hovered.Obstacle.ID()
		}

		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if syncEntry, ok := components.Sync.First(e.World); ok {
				components.Sync.Get(syncEntry).Pool.Clear()
			}
			if err := ed.Do(messages.ObstacleAction{Kind: messages.ActionResend}); err != nil {
				log.Printf("[editor] resend: %v", err)
			}
			return
		}

		if !found {
			return
		}
		o := hovered.Obstacle
		a := messages.ObstacleAction{ObjectID: o.ID()}

		switch {
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			d := cursor.Sub(o.Position())
			a.Kind = messages.ActionHit
			a.X, a.Y = cursor.X, cursor.Y
			a.Amount = math.Atan2(d.Y, d.X)
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
			a.Kind = messages.ActionDestroy
		case inpututil.IsKeyJustPressed(ebiten.KeyD):
			if o.Door() == nil {
				return
			}
			a.Kind = messages.ActionToggleDoor
			a.Alt = ebiten.IsKeyPressed(ebiten.KeyShift)
		case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
			a.Kind = messages.ActionScale
			a.Amount = cfg.Sandbox.ScaleStep
		case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
			a.Kind = messages.ActionScale
			a.Amount = -cfg.Sandbox.ScaleStep
		case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
			a.Kind = messages.ActionRemove
		default:
			return
		}

		if err := ed.Do(a); err != nil {
			log.Printf("[editor] %s obstacle %d: %v", a.Kind, a.ObjectID, err)
		}
	}
}
