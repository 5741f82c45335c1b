package network

import (
	"testing"

	"meatwagon-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastExcept_SkipsAuthor(t *testing.T) {
	b := NewBroadcaster()
	alice := b.Register("alice")
	bob := b.Register("bob")

	b.BroadcastExcept("alice", api.ServerResponse{Type: api.ResponseUpdate, Turn: 3})

	select {
	case msg := <-bob:
		assert.Equal(t, 3, msg.Turn)
	default:
		t.Fatal("bob should have received the update")
	}
	assert.Len(t, alice, 0)
}

func TestSendTo_UnknownClient(t *testing.T) {
	b := NewBroadcaster()
	assert.False(t, b.SendTo("ghost", api.ServerResponse{}))
}

func TestRegister_ReconnectKeepsNewChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("alice")
	fresh := b.Register("alice")

	_, open := <-old
	assert.False(t, open, "old channel must be closed on reconnect")

	// Опоздавший Unregister старого соединения не трогает новое
	b.Unregister("alice", old)
	require.True(t, b.HasSubscriber("alice"))

	require.True(t, b.SendTo("alice", api.ServerResponse{Turn: 1}))
	msg := <-fresh
	assert.Equal(t, 1, msg.Turn)

	b.Unregister("alice", fresh)
	assert.Equal(t, 0, b.SubscriberCount())
}

func TestSendTo_FullChannelDrops(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")
	for i := 0; i < cap(ch); i++ {
		require.True(t, b.SendTo("slow", api.ServerResponse{}))
	}
	assert.False(t, b.SendTo("slow", api.ServerResponse{}))
}
