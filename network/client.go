package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/obstaclesync/shared/bitstream"
	"github.com/automoto/obstaclesync/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ErrFellBehind is set when update batches arrive faster than the game
// drains them. Dropping a batch would desynchronise every object in it, so
// the client gives up and the scene reconnects.
var ErrFellBehind = errors.New("client fell behind the update stream")

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	networkID  esync.NetworkId
	serverName string
	tickRate   int
	conn       *websocket.Conn

	// Batches are applied in order, so unlike snapshots they are never
	// coalesced.
	batchCh chan messages.ObjectUpdateBatch
	hitCh   chan messages.ObstacleHitEvent
}

func NewClient(batchBuffer int) *Client {
	return &Client{
		state:   StateDisconnected,
		batchCh: make(chan messages.ObjectUpdateBatch, batchBuffer),
		hitCh:   make(chan messages.ObstacleHitEvent, 16),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			Protocol:   bitstream.ProtocolVersion,
			PlayerName: playerName,
		}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: networkID=%d server=%s tickRate=%d",
			msg.NetworkID, msg.ServerName, msg.TickRate)
		c.mu.Lock()
		c.networkID = msg.NetworkID
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, batch messages.ObjectUpdateBatch) {
		select {
		case c.batchCh <- batch:
		default:
			log.Printf("[client] dropping connection at tick %d: %v", batch.Tick, ErrFellBehind)
			c.setError(ErrFellBehind)
			c.closeConn()
		}
	})

	router.On(func(_ *router.NetworkClient, evt messages.ObstacleHitEvent) {
		select {
		case c.hitCh <- evt:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	c.state = StateDisconnected
	c.mu.Unlock()

	c.closeConn()
	router.ResetRouter()
}

func (c *Client) closeConn() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainBatches returns all pending update batches in arrival order, non-blocking.
func (c *Client) DrainBatches() []messages.ObjectUpdateBatch {
	return drainChan(c.batchCh)
}

// DrainHitEvents returns all pending hit events, non-blocking.
func (c *Client) DrainHitEvents() []messages.ObstacleHitEvent {
	return drainChan(c.hitCh)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
