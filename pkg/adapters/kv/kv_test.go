package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpad/inkpad/pkg/adapters/kv"
	"github.com/inkpad/inkpad/pkg/core"
)

func sampleState() core.State {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return core.State{
		Notes: []core.Note{
			{ID: "n2", Title: "Second", Content: "<p>two</p>", CreatedAt: now.Add(time.Hour), UpdatedAt: now.Add(2 * time.Hour)},
			{ID: "n1", Title: "First", Content: "<p>one</p>", CreatedAt: now, UpdatedAt: now},
		},
		ActiveID: "n2",
	}
}

func TestLoadEmptyStore(t *testing.T) {
	backend, err := kv.New(kv.Config{Path: t.TempDir()})
	require.NoError(t, err)

	state, err := backend.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Notes)
	assert.Empty(t, state.ActiveID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	codecs := map[string]kv.Codec{
		"json": kv.JSONCodec{},
		"yaml": kv.YAMLCodec{},
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			backend, err := kv.New(kv.Config{Path: t.TempDir(), Codec: codec})
			require.NoError(t, err)
			ctx := context.Background()

			want := sampleState()
			require.NoError(t, backend.Save(ctx, want))

			got, err := backend.Load(ctx)
			require.NoError(t, err)
			require.Len(t, got.Notes, 2)
			assert.Equal(t, want.ActiveID, got.ActiveID)
			assert.Equal(t, want.Notes[0].ID, got.Notes[0].ID)
			assert.Equal(t, want.Notes[1].Content, got.Notes[1].Content)
			assert.True(t, want.Notes[0].CreatedAt.Equal(got.Notes[0].CreatedAt))
		})
	}
}

func TestSaveClearsActive(t *testing.T) {
	backend, err := kv.New(kv.Config{Path: t.TempDir()})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, backend.Save(ctx, sampleState()))
	require.NoError(t, backend.Save(ctx, core.State{Notes: sampleState().Notes}))

	got, err := backend.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.ActiveID)
}

func TestCodecByName(t *testing.T) {
	for name, want := range map[string]string{"": "json", "json": "json", "yaml": "yaml", "yml": "yaml"} {
		codec, err := kv.CodecByName(name)
		require.NoError(t, err)
		assert.Equal(t, want, codec.Name())
	}

	_, err := kv.CodecByName("toml")
	assert.Error(t, err)
}

func TestWatchSeesExternalWrite(t *testing.T) {
	dir := t.TempDir()
	backend, err := kv.New(kv.Config{Path: dir})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := backend.Watch(ctx)
	require.NoError(t, err)

	// A second backend over the same directory plays the external writer.
	other, err := kv.New(kv.Config{Path: dir})
	require.NoError(t, err)
	require.NoError(t, other.Save(context.Background(), sampleState()))

	select {
	case ev := <-events:
		assert.Equal(t, core.EventModify, ev.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no event observed for external write")
	}

	cancel()
	require.Eventually(t, func() bool {
		_, open := <-events
		return !open
	}, 2*time.Second, 10*time.Millisecond, "event channel not closed on cancel")
}
