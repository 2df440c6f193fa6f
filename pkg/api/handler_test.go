package api

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmg-x/consolectl/pkg/api/resource"
	"github.com/rmg-x/consolectl/pkg/ccapi"
	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage"
	"github.com/rmg-x/consolectl/pkg/storage/memory"
)

func newTestAPI(t *testing.T) (*echo.Echo, *Handler, storage.Interface) {
	t.Helper()

	store := memory.NewStore()
	h := NewHandler(nil, store)

	e := echo.New()
	e.HideBanner = true
	h.RegisterRoutes(e)

	return e, h, store
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndFetchConsoles(t *testing.T) {
	e, _, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/consoles", `{"name":"livingroom","host":"192.168.1.34"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := &resource.ConsoleResource{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), created))
	assert.Equal(t, int32(1), created.ID)
	assert.Equal(t, "livingroom", created.Name)

	rec = doJSON(e, http.MethodGet, "/api/v1/consoles", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := &resource.ConsoleListResource{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), list))
	require.Len(t, list.Members, 1)
	assert.Equal(t, "192.168.1.34", list.Members[0].Host)
}

func TestCreateConsoleValidation(t *testing.T) {
	e, _, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/consoles", `{"host":"192.168.1.34"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/consoles", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetConsoleByID(t *testing.T) {
	e, _, store := newTestAPI(t)

	m := &model.Console{Name: "livingroom", Host: "192.168.1.34", Port: 6333}
	require.NoError(t, store.Consoles().Create(m))

	rec := doJSON(e, http.MethodGet, "/api/v1/consoles/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/consoles/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/consoles/zzz", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteConsole(t *testing.T) {
	e, _, store := newTestAPI(t)

	m := &model.Console{Name: "livingroom", Host: "192.168.1.34", Port: 6333}
	require.NoError(t, store.Consoles().Create(m))

	rec := doJSON(e, http.MethodDelete, "/api/v1/consoles/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/v1/consoles/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchSamples(t *testing.T) {
	e, _, store := newTestAPI(t)

	m := &model.Console{Name: "livingroom", Host: "192.168.1.34", Port: 6333}
	require.NoError(t, store.Consoles().Create(m))

	now := time.Now().Round(time.Second).UTC()
	require.NoError(t, store.Samples().Create(&model.Sample{ConsoleID: m.ID, Cell: 60, RSX: 66, Timestamp: now}))

	rec := doJSON(e, http.MethodGet, "/api/v1/consoles/1/samples", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := &resource.SampleListResource{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), list))
	require.Len(t, list.Members, 1)
	assert.Equal(t, int32(60), list.Members[0].Cell)

	rec = doJSON(e, http.MethodGet, "/api/v1/consoles/2/samples", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchEvents(t *testing.T) {
	e, _, store := newTestAPI(t)

	require.NoError(t, store.Events().Create(&model.Event{
		ConsoleID: 1,
		Topic:     "consolestatus",
		Timestamp: time.Now().Round(time.Second).UTC(),
		Details:   `{"status":"online"}`,
	}))

	rec := doJSON(e, http.MethodGet, "/api/v1/events", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := &resource.EventListResource{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), list))
	require.Len(t, list.Members, 1)
	assert.Equal(t, "consolestatus", list.Members[0].Topic)

	details, ok := list.Members[0].Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "online", details["status"])
}

// fakeConsole starts a fake ControlConsole endpoint and rewires the handler
// to dial it for every registered console.
func fakeConsole(t *testing.T, h *Handler, mux *http.ServeMux) {
	t.Helper()

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	host, portStr, err := net.SplitHostPort(ts.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	h.dial = func(m *model.Console) *ccapi.Client {
		return ccapi.New(host, ccapi.WithPort(port))
	}
}

func TestProxyNotify(t *testing.T) {
	e, h, store := newTestAPI(t)

	m := &model.Console{Name: "livingroom", Host: "192.168.1.34", Port: 6333}
	require.NoError(t, store.Consoles().Create(m))

	mux := http.NewServeMux()
	mux.HandleFunc("/ccapi/notify", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("id"))
		assert.Equal(t, "maintenance at noon", r.URL.Query().Get("msg"))
		w.Write([]byte("0\n"))
	})
	fakeConsole(t, h, mux)

	rec := doJSON(e, http.MethodPost, "/api/v1/consoles/1/notify", `{"icon":"caution","message":"maintenance at noon"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	reply := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "ok", reply["status"])
	assert.NotEmpty(t, reply["requestId"])
}

func TestProxyNotifyInvalidIcon(t *testing.T) {
	e, _, store := newTestAPI(t)

	m := &model.Console{Name: "livingroom", Host: "192.168.1.34", Port: 6333}
	require.NoError(t, store.Consoles().Create(m))

	rec := doJSON(e, http.MethodPost, "/api/v1/consoles/1/notify", `{"icon":"sparkles","message":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProxyBuzzerConsoleRejects(t *testing.T) {
	e, h, store := newTestAPI(t)

	m := &model.Console{Name: "livingroom", Host: "192.168.1.34", Port: 6333}
	require.NoError(t, store.Consoles().Create(m))

	mux := http.NewServeMux()
	mux.HandleFunc("/ccapi/ringbuzzer", func(w http.ResponseWriter, r *http.Request) {
		// EBUSY
		w.Write([]byte("8001000A\n"))
	})
	fakeConsole(t, h, mux)

	rec := doJSON(e, http.MethodPost, "/api/v1/consoles/1/buzzer", `{"type":"double"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProxyBuzzerUnknownConsole(t *testing.T) {
	e, _, _ := newTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/v1/consoles/7/buzzer", `{"type":"double"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
