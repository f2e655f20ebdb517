package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/service"
)

func TestWebSocketHub_AddRemoveClient(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}

	hub.addClient(client)
	if hub.ClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.ClientCount())
	}

	hub.removeClient(client)
	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
}

func TestWebSocketHub_RemoveClientClosesChannel(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}

	hub.addClient(client)
	hub.removeClient(client)

	// Verify channel is closed by checking if receive returns immediately
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("Channel should be closed")
		}
	default:
		t.Error("Channel should be closed and readable")
	}
}

func TestWebSocketHub_RemoveClientIdempotent(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}

	hub.addClient(client)
	hub.removeClient(client)
	hub.removeClient(client) // Should not panic

	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
}

func TestWebSocketHub_Broadcast(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client1 := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}
	client2 := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}

	hub.addClient(client1)
	hub.addClient(client2)

	testData := []byte(`{"test": "data"}`)
	hub.broadcast(testData)

	// Both clients should receive the message
	select {
	case msg := <-client1.send:
		if string(msg) != string(testData) {
			t.Errorf("Client 1 got %q, want %q", msg, testData)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Client 1 did not receive message")
	}

	select {
	case msg := <-client2.send:
		if string(msg) != string(testData) {
			t.Errorf("Client 2 got %q, want %q", msg, testData)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Client 2 did not receive message")
	}
}

func TestWebSocketHub_BroadcastToRemovedClient(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}

	hub.addClient(client)
	hub.removeClient(client)

	// This should not panic even though client's channel is closed
	hub.broadcast([]byte(`{"test": "data"}`))
}

func TestWebSocketHub_TrySendRecovery(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}

	// Close the channel to simulate a removed client
	close(client.send)

	// trySend should recover from the panic and not crash
	hub.trySend(client, []byte(`test`))
	// If we get here without panic, the test passes
}

func receiveMessage(t *testing.T, client *WebSocketClient) WebSocketMessage {
	t.Helper()
	select {
	case msg := <-client.send:
		var received WebSocketMessage
		if err := json.Unmarshal(msg, &received); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		return received
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Did not receive message")
	}
	return WebSocketMessage{}
}

func TestWebSocketHub_OnHistoryChange(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}
	hub.addClient(client)

	hub.OnHistoryChange(service.HistoryChange{
		Type:      service.ChangeHistory,
		StyleType: model.StyleFore,
		Code:      "FF0000",
	})

	received := receiveMessage(t, client)
	if received.Type != service.ChangeHistory {
		t.Errorf("Type = %q, want %q", received.Type, service.ChangeHistory)
	}
	data, ok := received.Data.(map[string]any)
	if !ok {
		t.Fatalf("Data = %T, want object", received.Data)
	}
	if data["code"] != "FF0000" {
		t.Errorf("code = %v, want FF0000", data["code"])
	}
	if data["style_type"] != string(model.StyleFore) {
		t.Errorf("style_type = %v, want %s", data["style_type"], model.StyleFore)
	}
}

func TestWebSocketHub_OnDocumentChange(t *testing.T) {
	hub := NewWebSocketHub(nil)

	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 10),
	}
	hub.addClient(client)

	hub.OnDocumentChange(DocumentChange{Type: DocumentModified, Path: "/tmp/doc.html"})

	received := receiveMessage(t, client)
	if received.Type != MessageDocumentChanged {
		t.Errorf("Type = %q, want %q", received.Type, MessageDocumentChanged)
	}
}

func TestWebSocketHub_BroadcastFullBuffer(t *testing.T) {
	hub := NewWebSocketHub(nil)

	// Create a client with a full buffer
	client := &WebSocketClient{
		hub:  hub,
		send: make(chan []byte, 1), // Small buffer
	}
	hub.addClient(client)

	// Fill the buffer
	client.send <- []byte("first")

	// This broadcast should trigger removal due to full buffer
	hub.broadcast([]byte("second"))

	// Client should be removed
	if hub.ClientCount() != 0 {
		t.Errorf("Expected client to be removed due to full buffer, got %d clients", hub.ClientCount())
	}
}
