package core

import (
	"log"
	"time"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[server] loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[server] loop stopped")
			return
		case <-ticker.C:
			if err := g.server.Tick(); err != nil {
				log.Printf("[server] tick: %v", err)
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
