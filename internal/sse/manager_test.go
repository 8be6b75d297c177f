package sse

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplanner/launchplanner-server/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChan:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestManager_BroadcastFiltersByProduct(t *testing.T) {
	m := NewManager(testLogger())

	all := m.Connect("")
	scoped := m.Connect("prd-a")
	other := m.Connect("prd-b")

	m.broadcast(NewGoalCreatedEvent(&domain.Goal{Record: domain.Record{ID: "goal-1"}, ProductID: "prd-a"}))

	assert.Equal(t, EventGoalCreated, receive(t, all).Type)
	assert.Equal(t, EventGoalCreated, receive(t, scoped).Type)
	assert.Empty(t, other.EventChan)

	// Global events reach every client.
	m.broadcast(NewReconciledEvent(1, 2))
	assert.Equal(t, EventReconciled, receive(t, other).Type)
}

func TestManager_ConnectDisconnect(t *testing.T) {
	m := NewManager(testLogger())

	c1 := m.Connect("")
	c2 := m.Connect("")
	assert.NotEqual(t, c1.ID, c2.ID)
	assert.Equal(t, 2, m.ClientCount())

	m.Disconnect(c1.ID)
	m.Disconnect(c1.ID) // second call is a no-op
	assert.Equal(t, 1, m.ClientCount())

	_, open := <-c1.Done
	assert.False(t, open)

	_, stillOpen := m.clients[c2.ID]
	assert.True(t, stillOpen)
}

func TestManager_StartDeliversAndShutdownCloses(t *testing.T) {
	m := NewManager(testLogger())
	client := m.Connect("")

	m.Start(context.Background())

	m.Emit(NewLeadCreatedEvent(&domain.Lead{ID: "lead-1", ProductID: "prd-1"}))
	evt := receive(t, client)
	assert.Equal(t, EventLeadCreated, evt.Type)
	assert.Equal(t, "prd-1", evt.ProductID)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.Shutdown(ctx))

	_, open := <-client.Done
	assert.False(t, open, "clients are closed on shutdown")

	// Emit after shutdown must not panic.
	assert.NotPanics(t, func() { m.Emit(NewReconciledEvent(0, 0)) })
	require.NoError(t, m.Shutdown(ctx), "shutdown is idempotent")
}

func TestManager_ShutdownRightAfterStartDrainsQueue(t *testing.T) {
	m := NewManager(testLogger())
	client := m.Connect("")

	m.Emit(NewGoalDeletedEvent("goal-1", "prd-1"))
	m.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, m.Shutdown(ctx))

	// Shutdown returned, so the queued event must already be with the client.
	evt, ok := <-client.EventChan
	require.True(t, ok, "queued event was not delivered before shutdown returned")
	assert.Equal(t, EventGoalDeleted, evt.Type)
}

func TestManager_EmitIgnoresForeignTypes(t *testing.T) {
	m := NewManager(testLogger())
	assert.NotPanics(t, func() { m.Emit("not an event") })
	assert.Empty(t, m.events)
}

func TestHandler_StreamsEvents(t *testing.T) {
	m := NewManager(testLogger())
	m.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = m.Shutdown(ctx)
	})

	srv := httptest.NewServer(NewHandler(m, testLogger()))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?productId=prd-1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (string, string) {
		var name, data string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "":
				return name, data
			}
		}
	}

	name, data := readEvent()
	assert.Equal(t, "connected", name)
	assert.Contains(t, data, "clientId")

	require.Eventually(t, func() bool { return m.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	m.Emit(NewProductDeletedEvent("prd-2", 0, 0)) // filtered out
	m.Emit(NewProductDeletedEvent("prd-1", 3, 4))

	name, data = readEvent()
	assert.Equal(t, string(EventProductDeleted), name)
	assert.Contains(t, data, `"productId":"prd-1"`)
	assert.Contains(t, data, `"goalsRemoved":3`)
}

func TestHandler_RejectsNonGet(t *testing.T) {
	h := NewHandler(NewManager(testLogger()), testLogger())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/events", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
