// file: internals/features/messaging/chat/hub/hub_test.go
package hub

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newClient(userID uuid.UUID, room string, buf int) *Client {
	return &Client{UserID: userID, Room: room, Send: make(chan []byte, buf)}
}

func waitCount(t *testing.T, h *Hub, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.ClientCount() == want
	}, time.Second, 5*time.Millisecond)
}

func TestHubRegisterUnregister(t *testing.T) {
	h := NewHub()
	go h.Run()

	u := uuid.New()
	c1 := newClient(u, "general", 4)
	c2 := newClient(u, "general", 4) // user sama, tab kedua

	h.Register <- c1
	h.Register <- c2
	waitCount(t, h, 2)

	h.Unregister <- c1
	waitCount(t, h, 1)

	// unregister dua kali tidak boleh panic (close channel hanya sekali)
	h.Unregister <- c1
	h.Unregister <- c2
	waitCount(t, h, 0)
}

func TestHubBroadcastRoom(t *testing.T) {
	h := NewHub()
	go h.Run()

	general := newClient(uuid.New(), "general", 4)
	lineA := newClient(uuid.New(), "line-a", 4)
	h.Register <- general
	h.Register <- lineA
	waitCount(t, h, 2)

	h.BroadcastRoom("general", []byte("halo"))

	select {
	case msg := <-general.Send:
		require.Equal(t, "halo", string(msg))
	case <-time.After(time.Second):
		t.Fatal("pesan room general tidak sampai")
	}
	require.Empty(t, lineA.Send)
}

func TestHubPushToUser(t *testing.T) {
	h := NewHub()
	go h.Run()

	u := uuid.New()
	tab1 := newClient(u, "general", 4)
	tab2 := newClient(u, "general", 4)
	other := newClient(uuid.New(), "general", 4)
	h.Register <- tab1
	h.Register <- tab2
	h.Register <- other
	waitCount(t, h, 3)

	h.PushToUser(u, []byte("notif"))

	for _, c := range []*Client{tab1, tab2} {
		select {
		case msg := <-c.Send:
			require.Equal(t, "notif", string(msg))
		case <-time.After(time.Second):
			t.Fatal("notifikasi tidak sampai ke semua tab")
		}
	}
	require.Empty(t, other.Send)
}

func TestHubSlowConsumerDropped(t *testing.T) {
	h := NewHub()
	go h.Run()

	slow := newClient(uuid.New(), "general", 1)
	h.Register <- slow
	waitCount(t, h, 1)

	// buffer 1: pesan kedua dibuang, BroadcastRoom tidak boleh blok
	done := make(chan struct{})
	go func() {
		h.BroadcastRoom("general", []byte("satu"))
		h.BroadcastRoom("general", []byte("dua"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blok pada konsumen lambat")
	}
	require.Len(t, slow.Send, 1)
	require.Equal(t, "satu", string(<-slow.Send))
}
