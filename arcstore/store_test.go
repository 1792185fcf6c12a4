package arcstore

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyvit/flatarc"
)

type logWriter struct{ t testing.TB }

func (c *logWriter) Write(buf []byte) (int, error) {
	c.t.Log(strings.TrimSuffix(string(buf), "\n"))
	return len(buf), nil
}

func testOptions(t testing.TB) Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(&logWriter{t}, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
		IsTesting: true,
	}
}

func eachBackend(t *testing.T, f func(t *testing.T, s *Store)) {
	t.Run("bolt", func(t *testing.T) {
		s, err := OpenBolt(filepath.Join(t.TempDir(), "arc.db"), testOptions(t))
		require.NoError(t, err)
		defer s.Close()
		f(t, s)
	})
	t.Run("mem", func(t *testing.T) {
		s := NewMemory(testOptions(t))
		defer s.Close()
		f(t, s)
	})
}

func TestPutView(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *Store) {
		require.NoError(t, s.Put("a", []byte("alice")))
		require.NoError(t, s.Put("b", nil))

		var got []byte
		require.NoError(t, s.View("a", func(archive []byte) error {
			got = bytes.Clone(archive)
			return nil
		}))
		assert.Equal(t, []byte("alice"), got)

		require.NoError(t, s.View("b", func(archive []byte) error {
			assert.Empty(t, archive)
			return nil
		}))

		require.NoError(t, s.Put("a", []byte("bob")))
		require.NoError(t, s.View("a", func(archive []byte) error {
			assert.Equal(t, "bob", string(archive))
			return nil
		}))
	})
}

func TestViewMissing(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *Store) {
		err := s.View("nope", func([]byte) error { return nil })
		assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

		require.NoError(t, s.Put("a", []byte("x")))
		err = s.View("nope", func([]byte) error { return nil })
		assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	})
}

func TestViewPropagatesCallbackError(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *Store) {
		require.NoError(t, s.Put("a", []byte("x")))
		boom := errors.New("boom")
		assert.Equal(t, boom, s.View("a", func([]byte) error { return boom }))
	})
}

func TestEmptyName(t *testing.T) {
	s := NewMemory(testOptions(t))
	defer s.Close()
	assert.True(t, errors.Is(s.Put("", []byte("x")), ErrName))
	assert.True(t, errors.Is(s.Delete(""), ErrName))
	assert.True(t, errors.Is(s.View("", func([]byte) error { return nil }), ErrName))
}

func TestChecksum(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *Store) {
		require.NoError(t, s.Put("a", []byte("alice")))
		require.NoError(t, s.update(func(b storageBucket) error {
			v := bytes.Clone(b.Get([]byte("a")))
			v[0] ^= 0xff
			return b.Put([]byte("a"), v)
		}))
		err := s.View("a", func([]byte) error {
			t.Fatal("callback must not run for a corrupted archive")
			return nil
		})
		assert.True(t, errors.Is(err, ErrChecksum), "got %v", err)

		require.NoError(t, s.update(func(b storageBucket) error {
			return b.Put([]byte("short"), []byte{1, 2, 3})
		}))
		err = s.View("short", func([]byte) error { return nil })
		assert.True(t, errors.Is(err, ErrChecksum), "got %v", err)
	})
}

func TestDeleteAndNames(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *Store) {
		names, err := s.Names()
		require.NoError(t, err)
		assert.Empty(t, names)

		for _, n := range []string{"c", "a", "b"} {
			require.NoError(t, s.Put(n, []byte(n)))
		}
		names, err = s.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names)

		require.NoError(t, s.Delete("b"))
		require.NoError(t, s.Delete("missing"))
		names, err = s.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, names)
	})
}

type logEntry struct {
	User string `arc:"intern"`
	Code uint16
}

func TestSaveLoad(t *testing.T) {
	eachBackend(t, func(t *testing.T, s *Store) {
		in := []logEntry{{"alice", 1}, {"bob", 2}, {"alice", 3}}
		require.NoError(t, Save(s, "log", in, flatarc.Options{}))

		var out []logEntry
		require.NoError(t, Load(s, "log", &out, flatarc.Options{Borrow: true}))
		assert.Equal(t, in, out)

		require.NoError(t, s.View("log", func(archive []byte) error {
			assert.Equal(t, 1, bytes.Count(archive, []byte("alice")))
			return nil
		}))
	})
}

func TestMemReaderKeepsSnapshot(t *testing.T) {
	st := newMemStorage()
	s := newStore(st, testOptions(t))
	require.NoError(t, s.Put("a", []byte("v1")))

	rtx, err := st.BeginTx(false)
	require.NoError(t, err)
	defer rtx.Rollback()

	require.NoError(t, s.Put("a", []byte("v2")))
	require.NoError(t, s.Put("b", []byte("new")))

	b := rtx.Bucket(bucketName)
	require.NotNil(t, b)
	archive, err := s.verify("a", b.Get([]byte("a")))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(archive))
	assert.Nil(t, b.Get([]byte("b")))
}

func TestMemClosed(t *testing.T) {
	s := NewMemory(testOptions(t))
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Put("a", []byte("x")), errMemClosed)
}
