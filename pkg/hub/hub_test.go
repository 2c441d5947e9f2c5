package hub

import (
	"testing"
	"time"
)

func TestNewHub(t *testing.T) {
	h := New("test")

	if h == nil {
		t.Fatal("New returned nil")
	}
	if h.ClientCount() != 0 {
		t.Error("ClientCount should be 0 initially")
	}
	if h.IsRunning() {
		t.Error("hub should not be running before Run")
	}
}

func TestHub_RunAndStop(t *testing.T) {
	h := New("test")
	go h.Run()

	// Give the loop a moment to start
	deadline := time.Now().Add(time.Second)
	for !h.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("hub never started")
		}
		time.Sleep(time.Millisecond)
	}

	h.Stop()
	deadline = time.Now().Add(time.Second)
	for h.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("hub never stopped")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestHub_BroadcastWithoutClients(t *testing.T) {
	h := New("test")
	go h.Run()
	defer h.Stop()

	// Should not block or panic with nobody listening
	for i := 0; i < 10; i++ {
		if err := h.BroadcastJSON(map[string]int{"tick": i}); err != nil {
			t.Fatalf("BroadcastJSON: %v", err)
		}
		h.BroadcastBinary([]byte{0xff, 0xd8})
	}
}

func TestHub_BroadcastJSONError(t *testing.T) {
	h := New("test")

	// Channels cannot be marshaled
	if err := h.BroadcastJSON(make(chan int)); err == nil {
		t.Error("expected marshal error")
	}
}

func TestHub_DropsSlowClientWhileCounted(t *testing.T) {
	h := New("test")
	go h.Run()
	defer h.Stop()

	// A client whose send buffer is already full and whose pumps never
	// run. The first broadcast that reaches it must drop it.
	c := &Client{hub: h, send: make(chan Message, 1)}
	c.send <- NewBinaryMessage([]byte{0x00})
	h.register <- c

	deadline := time.Now().Add(time.Second)
	for h.ClientCount() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(time.Millisecond)
	}

	// Read the client count from another goroutine while the drop
	// happens, the way the camera preview pump does against the frame
	// loop. The race detector flags any unsynchronized map access.
	counted := make(chan struct{})
	go func() {
		defer close(counted)
		stop := time.Now().Add(time.Second)
		for time.Now().Before(stop) {
			if h.ClientCount() == 0 {
				return
			}
		}
	}()

	for i := 0; i < 64; i++ {
		h.Broadcast(NewBinaryMessage([]byte{byte(i)}))
	}

	<-counted
	if got := h.ClientCount(); got != 0 {
		t.Fatalf("slow client not dropped: count %d", got)
	}
}

func TestMessageConstructors(t *testing.T) {
	j := NewJSONMessage([]byte(`{"a":1}`))
	if j.Type != JSONMessage {
		t.Errorf("json message type: got %v", j.Type)
	}

	b := NewBinaryMessage([]byte{1, 2, 3})
	if b.Type != BinaryMessage {
		t.Errorf("binary message type: got %v", b.Type)
	}
	if len(b.Data) != 3 {
		t.Errorf("binary payload: got %d bytes", len(b.Data))
	}
}
