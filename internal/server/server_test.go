package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meatwagon-server/internal/engine"
	"meatwagon-server/pkg/api"
	"meatwagon-server/pkg/scenario"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	graph, entities, err := engine.BuildWorld(scenario.Crossroads())
	require.NoError(t, err)

	srv := New(engine.NewSession(engine.NewConfig(), graph, entities), "0")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestDebugEndpoints(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "state", path: "/debug/state", status: http.StatusOK},
		{name: "reachable", path: "/debug/reachable?origin=5,0&budget=1", status: http.StatusOK},
		{name: "bad budget", path: "/debug/reachable?origin=5,0&budget=x", status: http.StatusBadRequest},
		{name: "unknown origin", path: "/debug/reachable?origin=9,9&budget=1", status: http.StatusBadRequest},
		{name: "path", path: "/debug/path?origin=5,0&goal=5,2", status: http.StatusOK},
		{name: "goal is blocked", path: "/debug/path?origin=0,2&goal=1,2", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	resp, err := http.Get(ts.URL + "/debug/reachable?origin=5,0&budget=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	var tiles []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tiles))
	assert.Equal(t, []string{"4,0", "5,0", "5,1"}, tiles)
}

func TestWriteTiles_EmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	writeTiles(rec, nil)

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestWebSocket_HandshakeAndCommand(t *testing.T) {
	_, ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteJSON(api.ClientCommand{Token: "alice", Action: "LOGIN"}))

	var initResp api.ServerResponse
	require.NoError(t, conn.ReadJSON(&initResp))
	assert.Equal(t, api.ResponseUpdate, initResp.Type)
	assert.Equal(t, "INIT", initResp.Command)
	assert.Len(t, initResp.Map, 24)

	require.NoError(t, conn.WriteJSON(api.ClientCommand{
		Action:  "SELECT",
		Payload: json.RawMessage(`{"entityId":"scout"}`),
	}))

	var selectResp api.ServerResponse
	require.NoError(t, conn.ReadJSON(&selectResp))
	assert.Equal(t, api.ResponseUpdate, selectResp.Type)
	assert.Equal(t, "scout", selectResp.SelectedEntityID)
	assert.Equal(t, "ENTITY_SELECTED", selectResp.Phase)
}

func TestWebSocket_OthersReceiveUpdates(t *testing.T) {
	_, ts := newTestServer(t)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	dial := func(token string) *websocket.Conn {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		require.NoError(t, conn.WriteJSON(api.ClientCommand{Token: token}))
		var init api.ServerResponse
		require.NoError(t, conn.ReadJSON(&init))
		return conn
	}

	alice := dial("alice")
	defer alice.Close()
	bob := dial("bob")
	defer bob.Close()

	require.NoError(t, alice.WriteJSON(api.ClientCommand{Action: "END_TURN"}))

	var own api.ServerResponse
	require.NoError(t, alice.ReadJSON(&own))
	assert.Equal(t, "END_TURN", own.Command)

	var pushed api.ServerResponse
	require.NoError(t, bob.ReadJSON(&pushed))
	assert.Equal(t, api.ResponseUpdate, pushed.Type)
	assert.Empty(t, pushed.Command)
	assert.Equal(t, 2, pushed.Turn)
}
