package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmg-x/consolectl/pkg/model"
	"github.com/rmg-x/consolectl/pkg/storage"
)

func TestConsoleStore(t *testing.T) {
	s := NewStore()

	m := &model.Console{Name: "livingroom", Host: "192.168.1.34", Port: 6333}
	require.NoError(t, s.Consoles().Create(m))
	assert.Equal(t, int32(1), m.ID)
	assert.False(t, m.CreatedAt.IsZero())

	found, err := s.Consoles().FindByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "livingroom", found.Name)

	found, err = s.Consoles().FindByName("livingroom")
	require.NoError(t, err)
	assert.Equal(t, m.ID, found.ID)

	_, err = s.Consoles().FindByName("bedroom")
	assert.Equal(t, storage.ErrNotFound, err)

	m.Notes = "devkit"
	require.NoError(t, s.Consoles().Update(m))
	found, err = s.Consoles().FindByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "devkit", found.Notes)

	all, err := s.Consoles().FetchAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.Consoles().Delete(m.ID))
	assert.Equal(t, storage.ErrNotFound, s.Consoles().Delete(m.ID))

	_, err = s.Consoles().FindByID(m.ID)
	assert.Equal(t, storage.ErrNotFound, err)
}

func TestConsoleStoreUpdateMissing(t *testing.T) {
	s := NewStore()

	err := s.Consoles().Update(&model.Console{ID: 42, Name: "ghost"})
	assert.Equal(t, storage.ErrNotFound, err)
}

func TestSampleStore(t *testing.T) {
	s := NewStore()

	now := time.Now().Round(time.Second).UTC()
	require.NoError(t, s.Samples().Create(&model.Sample{ConsoleID: 1, Cell: 60, RSX: 66, Timestamp: now}))
	require.NoError(t, s.Samples().Create(&model.Sample{ConsoleID: 2, Cell: 55, RSX: 58, Timestamp: now}))
	require.NoError(t, s.Samples().Create(&model.Sample{ConsoleID: 1, Cell: 61, RSX: 67, Timestamp: now}))

	samples, err := s.Samples().FetchByConsoleID(1)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	// Sorted by ID
	assert.Equal(t, int32(60), samples[0].Cell)
	assert.Equal(t, int32(61), samples[1].Cell)

	all, err := s.Samples().FetchAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEventStore(t *testing.T) {
	s := NewStore()

	m := &model.Event{ConsoleID: 1, Topic: "consolestatus", Details: `{"status":"online"}`}
	require.NoError(t, s.Events().Create(m))
	assert.Equal(t, int32(1), m.ID)

	found, err := s.Events().FindByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "consolestatus", found.Topic)

	_, err = s.Events().FindByID(99)
	assert.Equal(t, storage.ErrNotFound, err)
}
