package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// Sender is the part of a connected client the server writes to.
type Sender interface {
	SendMessage(msg any) error
}

// Server streams the obstacles of one level to every joined client and
// applies the edits they send back.
type Server struct {
	name     string
	version  string
	tickRate int

	loop      *GameLoop
	transport *transports.WsServerTransport

	// mu guards the feed and the client set. Batches are sent while it is
	// held so a joining client never sees a partial update before its full
	// snapshot.
	mu      sync.Mutex
	level   *ServerLevel
	clients map[Sender]esync.NetworkId
	nextID  esync.NetworkId
}

// NewServer creates a server for level. An empty version accepts any client.
func NewServer(level *ServerLevel, tickRate int, name, version string) *Server {
	s := &Server{
		name:     name,
		version:  version,
		tickRate: tickRate,
		level:    level,
		clients:  make(map[Sender]esync.NetworkId),
	}
	s.loop = NewGameLoop(s, tickRate)
	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()

	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		s.Leave(client)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		if err := s.Join(client, req); err != nil {
			log.Printf("[server] client %s: %v", client.Id(), err)
		}
	})

	router.On(func(client *router.NetworkClient, action messages.ObstacleAction) {
		if err := s.HandleAction(client, action); err != nil {
			log.Printf("[server] client %s: %s obstacle %d: %v", client.Id(), action.Kind, action.ObjectID, err)
		}
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

// Join admits a client and sends it every obstacle as a full update.
func (s *Server) Join(c Sender, req messages.JoinRequest) error {
	if reason := s.rejectReason(req); reason != "" {
		if err := c.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
			return fmt.Errorf("send rejection: %w", err)
		}
		return fmt.Errorf("join rejected: %s", reason)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	if err := c.SendMessage(messages.JoinAccepted{
		NetworkID:  id,
		ServerName: s.name,
		TickRate:   s.tickRate,
	}); err != nil {
		return fmt.Errorf("send join accepted: %w", err)
	}
	if err := s.sendFull(c); err != nil {
		return err
	}
	s.clients[c] = id

	log.Printf("[server] %q joined as %d (%d clients)", req.PlayerName, id, len(s.clients))
	return nil
}

func (s *Server) rejectReason(req messages.JoinRequest) string {
	if req.Protocol != bitstream.ProtocolVersion {
		return fmt.Sprintf("protocol %d, server speaks %d", req.Protocol, bitstream.ProtocolVersion)
	}
	if s.version != "" && req.Version != s.version {
		return fmt.Sprintf("version %q, server requires %q", req.Version, s.version)
	}
	return ""
}

func (s *Server) sendFull(c Sender) error {
	full, err := s.level.Feed.Full()
	if err != nil {
		return fmt.Errorf("encode level: %w", err)
	}
	if err := c.SendMessage(full); err != nil {
		return fmt.Errorf("send level: %w", err)
	}
	return nil
}

// Leave forgets a client.
func (s *Server) Leave(c Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c)
}

// HandleAction applies an edit from a joined client. Hits are broadcast
// straight away; state changes go out with the next tick.
func (s *Server) HandleAction(c Sender, a messages.ObstacleAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; !ok {
		return fmt.Errorf("not joined")
	}
	if a.Kind == messages.ActionResend {
		return s.sendFull(c)
	}

	hit, err := s.level.Feed.Apply(a)
	if err != nil {
		return err
	}
	if hit != nil {
		s.broadcast(*hit)
	}
	return nil
}

// Tick sends the changes since the last tick to every joined client.
func (s *Server) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.level.Feed.Batch()
	if err != nil {
		return err
	}
	if len(batch.Updates) == 0 && len(batch.Deleted) == 0 {
		return nil
	}
	s.broadcast(batch)
	return nil
}

func (s *Server) broadcast(msg any) {
	for c, id := range s.clients {
		if err := c.SendMessage(msg); err != nil {
			log.Printf("[server] send to %d: %v", id, err)
		}
	}
}

// PlayerCount returns the number of joined clients
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
