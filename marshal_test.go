package flatarc_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyvit/flatarc"
	"github.com/andreyvit/flatarc/intern"
	"github.com/andreyvit/flatarc/internal/arctest"
)

type Event struct {
	At     time.Time
	Kind   intern.String `arc:"intern"`
	Tags   []string      `arc:"intern"`
	Actor  *Actor        `arc:"shared"`
	Detail *string
}

type Actor struct {
	Name  string `arc:"intern"`
	Email string
}

func sampleEvents(n int) []Event {
	actors := []*Actor{
		{"alice", "alice@example.com"},
		{"bob", "bob@example.com"},
	}
	kinds := []intern.String{intern.Make("login"), intern.Make("logout"), intern.Make("purchase")}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	events := make([]Event, n)
	for i := range events {
		e := Event{
			At:    base.Add(time.Duration(i) * time.Minute),
			Kind:  kinds[i%len(kinds)],
			Tags:  []string{"web", kinds[i%len(kinds)].String()},
			Actor: actors[i%len(actors)],
		}
		if i%5 == 0 {
			d := fmt.Sprintf("order #%d", i)
			e.Detail = &d
		}
		events[i] = e
	}
	return events
}

func TestMarshalUnmarshal(t *testing.T) {
	opt := flatarc.Options{Logger: arctest.Logger(t), Verbose: true}
	in := sampleEvents(100)
	buf, err := flatarc.Marshal(in, opt)
	require.NoError(t, err)

	for _, s := range []string{"bob@example.com", "login", "purchase", "web"} {
		assert.Equal(t, 1, bytes.Count(buf, []byte(s)), s)
	}

	var out []Event
	require.NoError(t, flatarc.Unmarshal(buf, &out, opt))
	require.Len(t, out, len(in))
	for i := range in {
		assert.True(t, in[i].At.Equal(out[i].At), i)
		out[i].At = in[i].At
	}
	assert.Equal(t, in, out)
	assert.Same(t, out[0].Actor, out[2].Actor)
	assert.NotSame(t, out[0].Actor, out[1].Actor)
	assert.Equal(t, out[0].Kind.Handle(), intern.Make("login").Handle())
}

func TestMarshalLogsStats(t *testing.T) {
	var logs strings.Builder
	opt := flatarc.Options{
		Logger:  slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Verbose: true,
	}
	buf, err := flatarc.Marshal(sampleEvents(10), opt)
	require.NoError(t, err)
	var out []Event
	require.NoError(t, flatarc.Unmarshal(buf, &out, opt))

	s := logs.String()
	assert.Contains(t, s, "flatarc: marshaled")
	assert.Contains(t, s, fmt.Sprintf("size=%d", len(buf)))
	assert.Contains(t, s, "shared=2")
	assert.Contains(t, s, "flatarc: unmarshaled")

	logs.Reset()
	_, err = flatarc.Marshal(sampleEvents(10), flatarc.Options{Logger: opt.Logger})
	require.NoError(t, err)
	assert.Empty(t, logs.String())
}

func TestMarshalBufferLimit(t *testing.T) {
	_, err := flatarc.Marshal(sampleEvents(100), flatarc.Options{BufferLimit: 256})
	require.Error(t, err)

	var ae *flatarc.AdapterError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, flatarc.LayerSerializer, ae.Layer)
	var ce *flatarc.CompositeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, flatarc.PartWriter, ce.Part)
	assert.ErrorIs(t, err, flatarc.ErrBufferFull)
}

func TestMarshalInternCapacity(t *testing.T) {
	type Log struct {
		User string `arc:"intern"`
	}
	logs := []Log{{"alice"}, {"bob"}, {"alice"}}

	_, err := flatarc.Marshal(logs, flatarc.Options{MaxInternEntries: 1})
	var ae *flatarc.AdapterError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, flatarc.LayerIntern, ae.Layer)
	assert.ErrorIs(t, err, flatarc.ErrInternCapacity)

	_, err = flatarc.Marshal(logs, flatarc.Options{MaxInternBytes: 6})
	assert.ErrorIs(t, err, flatarc.ErrInternCapacity)

	_, err = flatarc.Marshal(logs, flatarc.Options{MaxInternEntries: 2, MaxInternBytes: 8})
	assert.NoError(t, err)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	var out []Event
	err := flatarc.Unmarshal([]byte("definitely not an archive"), &out, flatarc.Options{})
	require.Error(t, err)
	var de *flatarc.DataError
	assert.True(t, errors.As(err, &de))
	assert.ErrorIs(t, err, flatarc.ErrCorrupted)
}

func TestAdapterRoundTripSharesRegistry(t *testing.T) {
	a := flatarc.NewDefaultAdapter(flatarc.Options{})
	actor := &Actor{"carol", "carol@example.com"}
	pos1, err := flatarc.SerializeValue(a, Event{Kind: intern.Make("a"), Actor: actor})
	require.NoError(t, err)
	pos2, err := flatarc.SerializeValue(a, Event{Kind: intern.Make("b"), Actor: actor})
	require.NoError(t, err)
	buf := a.Serializer().Writer().Bytes()

	var e1, e2 Event
	require.NoError(t, flatarc.DeserializeAt(buf, pos1, &e1, a, flatarc.Options{}))
	require.NoError(t, flatarc.DeserializeAt(buf, pos2, &e2, a, flatarc.Options{}))
	assert.Same(t, e1.Actor, e2.Actor)
	assert.Equal(t, 1, a.Deserializer().Len())
	assert.Equal(t, "b", e2.Kind.String())
}
