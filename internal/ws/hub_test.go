package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dkhalil/blurt/internal/models"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- client

	msg := models.Message{ID: 1, PostedBy: 2, Text: "Hello World", TimePostedEpoch: 1700000000000}
	hub.Broadcast(msg)

	select {
	case raw := <-client.send:
		var got models.Message
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("Failed to decode broadcast: %v", err)
		}
		if got != msg {
			t.Errorf("Expected %+v, got %+v", msg, got)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a broadcast message, got none")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Unbuffered send channel with no reader: the hub should drop the client
	// instead of blocking.
	client := &Client{hub: hub, send: make(chan []byte)}
	hub.register <- client

	hub.Broadcast(models.Message{ID: 1, PostedBy: 1, Text: "x"})

	// Give the hub time to process
	time.Sleep(100 * time.Millisecond)

	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("Expected closed channel for dropped client")
		}
	default:
		t.Error("Expected send channel to be closed")
	}
}
