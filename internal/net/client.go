package net

import (
	"fmt"
	"log"

	"SketchBoard/internal/state"

	"github.com/gorilla/websocket"
)

// Send plays scripted steps into a remote board's bridge. A tool name is
// sent whenever the tool changes between steps.
func Send(link string, steps []state.Step) (session string, err error) {
	url := BridgeURL(link)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return "", fmt.Errorf("dialing %s: %w", url, err)
	}
	defer conn.Close()

	var hello Message
	if err := conn.ReadJSON(&hello); err != nil {
		return "", fmt.Errorf("reading greeting: %w", err)
	}
	if hello.Type != "hello" {
		return "", fmt.Errorf("%w: expected hello, got %q", ErrBadMessage, hello.Type)
	}
	log.Printf("[BRIDGE] Connected to board %s", state.ShortSession(hello.Session))

	current := state.Tool(-1)
	for _, s := range steps {
		msg := Message{Type: s.Event.Kind.String(), X: s.Event.X, Y: s.Event.Y}
		if s.Tool != current {
			msg.Tool = s.Tool.String()
			current = s.Tool
		}
		if err := conn.WriteJSON(msg); err != nil {
			return hello.Session, fmt.Errorf("sending %s: %w", msg.Type, err)
		}
	}
	err = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		return hello.Session, fmt.Errorf("closing: %w", err)
	}
	return hello.Session, nil
}
