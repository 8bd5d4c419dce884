package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"SketchBoard/internal/state"

	"github.com/gorilla/websocket"
)

// BridgePath is where the bridge listens for websocket upgrades.
const BridgePath = "/pointer"

// ErrBadMessage marks client messages the bridge cannot turn into events.
var ErrBadMessage = errors.New("bad pointer message")

// Message is the bridge wire format. Clients send down/move/up with board
// coordinates and an optional tool name; the bridge answers with hello on
// connect and error for messages it cannot use.
type Message struct {
	Type    string  `json:"type"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Tool    string  `json:"tool,omitempty"`
	Session string  `json:"session,omitempty"`
	Error   string  `json:"error,omitempty"`
}

// Pointer converts a client message into an editor event. tool is nil when
// the message does not switch tools.
func (m Message) Pointer() (state.Event, *state.Tool, error) {
	kind, err := state.ParseEventKind(m.Type)
	if err != nil {
		return state.Event{}, nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	var tool *state.Tool
	if m.Tool != "" {
		t, err := state.ParseTool(m.Tool)
		if err != nil {
			return state.Event{}, nil, fmt.Errorf("%w: %v", ErrBadMessage, err)
		}
		tool = &t
	}
	return state.Event{Kind: kind, X: m.X, Y: m.Y}, tool, nil
}

// Peer is a connected remote input device.
type Peer struct {
	Conn *websocket.Conn
	Addr string
}

// PeerManager tracks connected peers.
type PeerManager struct {
	peers map[string]*Peer
	mu    sync.RWMutex
}

// NewPeerManager returns an empty manager.
func NewPeerManager() *PeerManager {
	return &PeerManager{
		peers: make(map[string]*Peer),
	}
}

// Add registers peer under its address.
func (pm *PeerManager) Add(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.peers[peer.Addr] = peer
	log.Printf("[BRIDGE] Pointer device connected from %s", peer.Addr)
}

// Remove forgets peer.
func (pm *PeerManager) Remove(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.peers, peer.Addr)
	log.Printf("[BRIDGE] Pointer device %s disconnected", peer.Addr)
}

// Count is the number of connected peers.
func (pm *PeerManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// closeAll drops every connection, used on shutdown.
func (pm *PeerManager) closeAll() {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	for _, p := range pm.peers {
		p.Conn.Close()
	}
}

// Bridge accepts pointer events from remote devices over websocket and
// hands them to Deliver, tagged with the peer address as the source.
// Deliver is called from connection goroutines; the caller is responsible
// for moving each call onto its event loop so that events reach the editor
// one at a time. An error from Deliver is sent back to the peer and the
// event counts as not delivered.
type Bridge struct {
	Session string
	Deliver func(source string, ev state.Event, tool *state.Tool) error

	peers    *PeerManager
	upgrader websocket.Upgrader
}

// NewBridge returns a bridge greeting peers with session.
func NewBridge(session string, deliver func(source string, ev state.Event, tool *state.Tool) error) *Bridge {
	return &Bridge{
		Session: session,
		Deliver: deliver,
		peers:   NewPeerManager(),
		upgrader: websocket.Upgrader{
			// devices on the LAN open the page from wherever they like
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Peers is the number of connected devices.
func (b *Bridge) Peers() int { return b.peers.Count() }

func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[BRIDGE] Upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	peer := &Peer{Conn: conn, Addr: r.RemoteAddr}
	b.peers.Add(peer)
	defer conn.Close()
	defer b.peers.Remove(peer)

	if err := conn.WriteJSON(Message{Type: "hello", Session: b.Session}); err != nil {
		log.Printf("[BRIDGE] Greeting %s failed: %v", peer.Addr, err)
		return
	}
	b.readLoop(peer)
}

func (b *Bridge) readLoop(peer *Peer) {
	// a device that vanishes mid-gesture must not leave the editor stuck
	var last state.Event
	pressed := false
	defer func() {
		if pressed {
			b.deliver(peer.Addr, state.Event{Kind: state.EventUp, X: last.X, Y: last.Y}, nil)
		}
	}()

	for {
		var msg Message
		if err := peer.Conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[BRIDGE] Read from %s: %v", peer.Addr, err)
			}
			return
		}
		ev, tool, err := msg.Pointer()
		if err == nil {
			err = b.deliver(peer.Addr, ev, tool)
		}
		if err != nil {
			if werr := peer.Conn.WriteJSON(Message{Type: "error", Error: err.Error()}); werr != nil {
				return
			}
			continue
		}
		switch ev.Kind {
		case state.EventDown:
			pressed = true
		case state.EventUp:
			pressed = false
		}
		last = ev
	}
}

func (b *Bridge) deliver(source string, ev state.Event, tool *state.Tool) error {
	if b.Deliver == nil {
		return nil
	}
	return b.Deliver(source, ev, tool)
}

// Listen binds the bridge port on every interface.
func Listen(port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("pointer bridge: %w", err)
	}
	return ln, nil
}

// Serve runs the bridge on ln until ctx is cancelled. ln is closed on return.
func (b *Bridge) Serve(ctx context.Context, ln net.Listener) error {
	mux := http.NewServeMux()
	mux.Handle(BridgePath, b)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	log.Printf("[BRIDGE] Listening on %s%s", ln.Addr(), BridgePath)

	select {
	case err := <-errc:
		return fmt.Errorf("pointer bridge: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	b.peers.closeAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("pointer bridge shutdown: %w", err)
	}
	return nil
}
