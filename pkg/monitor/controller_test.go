package monitor

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmg-x/consolectl/pkg/ccapi"
	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage/memory"
)

// testConsole is a fake console whose temperature and availability can be
// flipped between poll rounds.
type testConsole struct {
	ts   *httptest.Server
	cell atomic.Int32
	down atomic.Bool
}

func newTestConsole(t *testing.T) *testConsole {
	t.Helper()

	tc := &testConsole{}
	tc.cell.Store(60)

	mux := http.NewServeMux()
	mux.HandleFunc("/ccapi/gettemperature", func(w http.ResponseWriter, r *http.Request) {
		if tc.down.Load() {
			hj, ok := w.(http.Hijacker)
			if ok {
				if conn, _, err := hj.Hijack(); err == nil {
					conn.Close()
				}
			}
			return
		}
		cell := tc.cell.Load()
		w.Write([]byte("0\n" + strconv.FormatInt(int64(cell), 16) + "\n42\n"))
	})

	tc.ts = httptest.NewServer(mux)
	t.Cleanup(tc.ts.Close)

	return tc
}

func (tc *testConsole) hostPort(t *testing.T) (string, int) {
	t.Helper()

	host, portStr, err := net.SplitHostPort(tc.ts.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return host, port
}

func TestPollRecordsSampleAndOnlineEvent(t *testing.T) {
	store := memory.NewStore()
	tc := newTestConsole(t)
	host, port := tc.hostPort(t)

	require.NoError(t, store.Consoles().Create(&model.Console{Name: "livingroom", Host: host, Port: port}))

	ctrl := NewController(nil, store, time.Second)
	ctrl.PollAll(context.Background())

	samples, err := store.Samples().FetchByConsoleID(1)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, int32(60), samples[0].Cell)
	assert.Equal(t, int32(66), samples[0].RSX)

	events, err := store.Events().FetchAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "consolestatus", events[1].Topic)
	assert.Contains(t, events[1].Details, "online")
}

func TestPollEmitsTransitionsOnce(t *testing.T) {
	store := memory.NewStore()
	tc := newTestConsole(t)
	host, port := tc.hostPort(t)

	require.NoError(t, store.Consoles().Create(&model.Console{Name: "livingroom", Host: host, Port: port}))

	ctrl := NewController(nil, store, time.Second)

	// Two online rounds emit a single status event.
	ctrl.PollAll(context.Background())
	ctrl.PollAll(context.Background())

	events, err := store.Events().FetchAll()
	require.NoError(t, err)
	assert.Len(t, events, 1)

	// Going down emits an offline event, once.
	tc.down.Store(true)
	ctrl.PollAll(context.Background())
	ctrl.PollAll(context.Background())

	events, err = store.Events().FetchAll()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Contains(t, events[2].Details, "offline")

	// And back up again.
	tc.down.Store(false)
	ctrl.PollAll(context.Background())

	events, err = store.Events().FetchAll()
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestPollTemperatureAlert(t *testing.T) {
	store := memory.NewStore()
	tc := newTestConsole(t)
	host, port := tc.hostPort(t)
	tc.cell.Store(80)

	require.NoError(t, store.Consoles().Create(&model.Console{Name: "livingroom", Host: host, Port: port}))

	ctrl := NewController(nil, store, time.Second)
	ctrl.PollAll(context.Background())

	events, err := store.Events().FetchAll()
	require.NoError(t, err)

	topics := make(map[string]bool)
	for _, ev := range events {
		topics[ev.Topic] = true
	}
	assert.True(t, topics["consolestatus"])
	assert.True(t, topics["temperature"])
}

func TestRunAndShutdown(t *testing.T) {
	store := memory.NewStore()

	ctrl := NewController(nil, store, 10*time.Millisecond)
	go ctrl.Run()

	time.Sleep(50 * time.Millisecond)
	ctrl.Shutdown()
}

func TestDialOverride(t *testing.T) {
	store := memory.NewStore()
	tc := newTestConsole(t)
	host, port := tc.hostPort(t)

	// Registered host is bogus, the dial override redirects to the fake.
	require.NoError(t, store.Consoles().Create(&model.Console{Name: "livingroom", Host: "10.255.255.1", Port: 6333}))

	ctrl := NewController(nil, store, time.Second)
	ctrl.dial = func(m *model.Console) *ccapi.Client {
		return ccapi.New(host, ccapi.WithPort(port))
	}

	ctrl.PollAll(context.Background())

	samples, err := store.Samples().FetchByConsoleID(1)
	require.NoError(t, err)
	assert.Len(t, samples, 1)
}
