package flatarc

import (
	"bytes"
	"errors"
	"net/netip"
	"reflect"
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreyvit/flatarc/intern"
	"github.com/andreyvit/flatarc/internal/arctest"
)

type Log struct {
	User string `arc:"intern"`
	Code uint16
}

type PlainLog struct {
	User string
	Code uint16
}

var fiveLogs = []Log{{"alice", 1}, {"bob", 2}, {"alice", 3}, {"alice", 4}, {"bob", 5}}

func marshal(t testing.TB, v any) []byte {
	t.Helper()
	buf, err := Marshal(v, Options{})
	require.NoError(t, err)
	return buf
}

func TestSerializeValueInternsStrings(t *testing.T) {
	a := NewDefaultAdapter(Options{})
	pos, err := SerializeValue(a, fiveLogs)
	require.NoError(t, err)
	buf := a.Serializer().Writer().Bytes()
	assert.Equal(t, 68, pos)

	arctest.BytesEq(t, buf, arctest.Expand(
		"'alice 'bob",
		"#-8 #5 0100 0000",
		"#-15 #3 0200 0000",
		"#-32 #5 0300 0000",
		"#-44 #5 0400 0000",
		"#-51 #3 0500 0000",
		"#-60 #5",
	))
	assert.Equal(t, 1, bytes.Count(buf, []byte("alice")))
	assert.Equal(t, 1, bytes.Count(buf, []byte("bob")))
	assert.Less(t, bytes.Index(buf, []byte("alice")), bytes.Index(buf, []byte("bob")))
	assert.Equal(t, InternStats{Entries: 2, Bytes: 8, Lookups: 5, Hits: 3, SavedBytes: 13}, a.InternRegistry().Stats())

	var out []Log
	require.NoError(t, Deserialize(buf, &out, a, Options{}))
	assert.Equal(t, fiveLogs, out)
}

func TestInterningThousandLogs(t *testing.T) {
	users := []string{
		"Alice, the leader and brains behind the team",
		"Bob, bodybuilder and the muscle of the operation",
		"Carol, safe-cracker and swindler extraordinaire",
		"Dave, Jumanji master of the nineteenth dimension",
	}
	var logs []Log
	var plain []PlainLog
	for i := range 1000 {
		logs = append(logs, Log{users[i%len(users)], uint16(i)})
		plain = append(plain, PlainLog{users[i%len(users)], uint16(i)})
	}

	buf := marshal(t, logs)
	assert.Less(t, len(buf), 20000)
	for _, u := range users {
		assert.Equal(t, 1, bytes.Count(buf, []byte(u)), u)
	}
	assert.Greater(t, len(marshal(t, plain)), 40000)

	var out []Log
	require.NoError(t, Unmarshal(buf, &out, Options{}))
	assert.Equal(t, logs, out)
}

type Level uint8

type Kinds struct {
	B      bool
	I8     int8
	U8     uint8
	I16    int16
	U16    uint16
	I32    int32
	U32    uint32
	I64    int64
	U64    uint64
	I      int
	U      uint
	F32    float32
	F64    float64
	Lvl    Level
	S      string
	Bs     []byte
	Arr    [3]int16
	Strs   []string `arc:"intern"`
	Nested struct{ A, B string }
	Matrix [][]int32
	Opt    *int64
	NoOpt  *int64
	When   time.Time     `arc:"intern"`
	Who    intern.String `arc:"intern"`
	Addr   netip.Addr
	Empty  struct{}
	Skip   string `arc:"-"`
	hidden int
}

func sampleKinds() Kinds {
	n := int64(-7)
	k := Kinds{
		B: true, I8: -8, U8: 8, I16: -16, U16: 16, I32: -32, U32: 32,
		I64: -1 << 60, U64: 1 << 63, I: -123456789, U: 987654321,
		F32: 1.5, F64: -2.25, Lvl: 3,
		S:      "naïve 日本\x00",
		Bs:     []byte{0, 1, 2, 0xff},
		Arr:    [3]int16{1, -2, 3},
		Strs:   []string{"x", "", "x", "yy"},
		Matrix: [][]int32{{1, 2}, nil, {3}},
		Opt:    &n,
		When:   time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC),
		Who:    intern.Make("carol"),
		Addr:   netip.MustParseAddr("10.0.0.1"),
		Skip:   "not archived",
		hidden: 42,
	}
	k.Nested.A, k.Nested.B = "a", "x"
	return k
}

func TestRoundTripKinds(t *testing.T) {
	in := sampleKinds()
	buf := marshal(t, &in)

	var out Kinds
	require.NoError(t, Unmarshal(buf, &out, Options{}))
	assert.True(t, in.When.Equal(out.When))
	out.When = in.When
	assert.Equal(t, "", out.Skip)
	assert.Equal(t, 0, out.hidden)
	in.Skip, in.hidden = "", 0
	assert.Equal(t, in, out)

	assert.Equal(t, 1, bytes.Count(buf, []byte("carol")))
	assert.Equal(t, 1, bytes.Count(buf, []byte("yy")))
}

type Note struct {
	Text *string `arc:"intern"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestEmptyVersusAbsent(t *testing.T) {
	in := []Note{{nil}, {ptr("")}, {ptr("\x00")}, {ptr("é")}, {ptr("")}}
	var out []Note
	require.NoError(t, Unmarshal(marshal(t, in), &out, Options{}))
	require.Len(t, out, len(in))
	assert.Nil(t, out[0].Text)
	for i := 1; i < len(in); i++ {
		require.NotNil(t, out[i].Text, i)
		assert.Equal(t, *in[i].Text, *out[i].Text, i)
	}
}

func TestSmallInputs(t *testing.T) {
	var out []Log
	buf := marshal(t, []Log{})
	assert.Len(t, buf, RefLayout.Size)
	require.NoError(t, Unmarshal(buf, &out, Options{}))
	assert.Empty(t, out)

	buf = marshal(t, []Log{{"", 0}})
	require.NoError(t, Unmarshal(buf, &out, Options{}))
	assert.Equal(t, []Log{{"", 0}}, out)

	var zero Kinds
	buf = marshal(t, zero)
	var zout Kinds
	require.NoError(t, Unmarshal(buf, &zout, Options{}))
	assert.True(t, zout.When.IsZero())
	zout.When = time.Time{}
	assert.Equal(t, zero, zout)

	var e struct{}
	buf = marshal(t, e)
	assert.Empty(t, buf)
	require.NoError(t, Unmarshal(buf, &e, Options{}))
}

type Node struct {
	Name string `arc:"intern"`
	Next *Node  `arc:"shared"`
}

type Graph struct {
	A     *Node   `arc:"shared"`
	B     *Node   `arc:"shared"`
	None  *Node   `arc:"shared"`
	All   []*Node `arc:"shared"`
	Nums  []int   `arc:"shared"`
	Nums2 []int   `arc:"shared"`
	Empty []int   `arc:"shared"`
}

func TestSharedValues(t *testing.T) {
	tail := &Node{Name: "tail"}
	head := &Node{Name: "head", Next: tail}
	nums := []int{1, 2, 3}
	in := Graph{A: head, B: tail, All: []*Node{head, tail, head}, Nums: nums, Nums2: nums}

	a := NewDefaultAdapter(Options{})
	_, err := SerializeValue(a, in)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Serializer().shared.Len())
	buf := a.Serializer().Writer().Bytes()

	var out Graph
	require.NoError(t, Deserialize(buf, &out, nil, Options{}))
	require.NotNil(t, out.A)
	assert.Equal(t, "head", out.A.Name)
	assert.Same(t, out.B, out.A.Next)
	assert.Nil(t, out.B.Next)
	assert.Nil(t, out.None)
	assert.Equal(t, []*Node{out.A, out.B, out.A}, out.All)
	assert.Same(t, out.A, out.All[2])
	assert.Equal(t, nums, out.Nums)
	assert.Same(t, &out.Nums[0], &out.Nums2[0])
	assert.Nil(t, out.Empty)
}

func TestSharedRegistrySpansCalls(t *testing.T) {
	tail := &Node{Name: "tail"}
	a := NewDefaultAdapter(Options{})
	pos1, err := SerializeValue(a, Graph{A: tail})
	require.NoError(t, err)
	pos2, err := SerializeValue(a, Graph{B: tail})
	require.NoError(t, err)
	buf := a.Serializer().Writer().Bytes()

	shared := NewSharedDeserializeMap()
	var g1, g2 Graph
	require.NoError(t, DeserializeAt(buf, pos1, &g1, shared, Options{}))
	require.NoError(t, DeserializeAt(buf, pos2, &g2, shared, Options{}))
	assert.Same(t, g1.A, g2.B)
	assert.Equal(t, 1, shared.Len())
}

func TestSharedCycle(t *testing.T) {
	n := &Node{Name: "loop"}
	n.Next = n
	_, err := Marshal(Graph{A: n}, Options{})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), "cycle")
}

func TestMissingCapabilities(t *testing.T) {
	_, err := SerializeValue(NewAlignedSerializer(nil, 0), Log{"alice", 1})
	assert.ErrorIs(t, err, ErrMissingCapability)

	_, err = SerializeValue(newInternWriter(), Graph{A: &Node{Name: "a"}})
	assert.ErrorIs(t, err, ErrMissingCapability)

	s := NewAlignedSerializer(nil, 0)
	_, err = SerializeValue(s, [][]int{{1, 2}, {3}})
	require.NoError(t, err, "vectors do not need scratch space")
	var out [][]int
	require.NoError(t, Deserialize(s.Bytes(), &out, nil, Options{}))
	assert.Equal(t, [][]int{{1, 2}, {3}}, out)
}

type recursiveByValue struct {
	Next *recursiveByValue
}

func TestUnsupportedTypes(t *testing.T) {
	values := []any{
		map[string]int{},
		struct{ C chan int }{},
		struct{ X any }{},
		struct {
			N int `arc:"intern"`
		}{},
		struct {
			S string `arc:"shared"`
		}{},
		struct {
			S string `arc:"bogus"`
		}{},
		struct {
			B []byte `arc:"intern,shared"`
		}{},
		struct {
			Nested struct{ A string } `arc:"intern"`
		}{},
		recursiveByValue{},
		nil,
		(*Log)(nil),
	}
	for _, v := range values {
		_, err := Marshal(v, Options{})
		assert.ErrorIs(t, err, ErrUnsupported, "%T", v)
	}

	var m map[string]int
	assert.ErrorIs(t, Unmarshal(nil, &m, Options{}), ErrUnsupported)
	assert.ErrorIs(t, Unmarshal(nil, Log{}, Options{}), ErrUnsupported)
	assert.ErrorIs(t, Unmarshal(nil, (*Log)(nil), Options{}), ErrUnsupported)

	_, err := Marshal(struct {
		F func() `arc:"-"`
		c chan int
	}{}, Options{})
	assert.NoError(t, err, "skipped fields may have any type")
}

func TestCorruptedArchivesFailCleanly(t *testing.T) {
	tail := &Node{Name: "tail"}
	type Doc struct {
		K Kinds
		G Graph
	}
	in := Doc{sampleKinds(), Graph{A: &Node{"head", tail}, B: tail, All: []*Node{tail}, Nums: []int{1}}}
	buf := marshal(t, in)

	var out Doc
	require.NoError(t, Unmarshal(buf, &out, Options{}))

	for n := range len(buf) {
		var out Doc
		if err := Unmarshal(buf[:n], &out, Options{}); err != nil {
			var de *DataError
			assert.True(t, errors.As(err, &de), "truncated to %d: %v", n, err)
		}
	}
	for i := range buf {
		for _, flip := range []byte{0x01, 0x80, 0xff} {
			c := bytes.Clone(buf)
			c[i] ^= flip
			var out Doc
			err := Unmarshal(c, &out, Options{StrictUTF8: true})
			if err != nil {
				var de *DataError
				assert.True(t, errors.As(err, &de), "byte %d ^ %02x: %v", i, flip, err)
			}
		}
	}
}

func TestHostileVectorLengths(t *testing.T) {
	var out []Log
	err := Unmarshal(arctest.Expand("#0 #1000000"), &out, Options{})
	assert.ErrorIs(t, err, ErrCorrupted)

	var empties []struct{}
	err = Unmarshal(arctest.Expand("#0 #1000000"), &empties, Options{})
	assert.ErrorIs(t, err, ErrCorrupted)

	// a shared pointer must point backwards
	var g struct {
		P *Node `arc:"shared"`
	}
	err = Unmarshal(arctest.Expand("#4"), &g, Options{})
	assert.ErrorIs(t, err, ErrCorrupted)
}

func inBuf(buf []byte, b *byte) bool {
	if b == nil || len(buf) == 0 {
		return false
	}
	p := uintptr(unsafe.Pointer(b))
	start := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return p >= start && p < start+uintptr(len(buf))
}

func TestDecodeOptions(t *testing.T) {
	buf := marshal(t, fiveLogs)

	t.Run("copying", func(t *testing.T) {
		var out []Log
		require.NoError(t, Unmarshal(buf, &out, Options{}))
		assert.False(t, inBuf(buf, unsafe.StringData(out[0].User)))
		assert.Same(t, unsafe.StringData(out[0].User), unsafe.StringData(out[2].User), "interned content is materialized once")
	})
	t.Run("borrow", func(t *testing.T) {
		var out []Log
		require.NoError(t, Unmarshal(buf, &out, Options{Borrow: true}))
		assert.True(t, inBuf(buf, unsafe.StringData(out[0].User)))
		assert.True(t, inBuf(buf, unsafe.StringData(out[1].User)))
	})
	t.Run("intern on read", func(t *testing.T) {
		var out1, out2 []Log
		require.NoError(t, Unmarshal(buf, &out1, Options{InternOnRead: true, Borrow: true}))
		require.NoError(t, Unmarshal(bytes.Clone(buf), &out2, Options{InternOnRead: true}))
		assert.False(t, inBuf(buf, unsafe.StringData(out1[0].User)))
		assert.Same(t, unsafe.StringData(out1[0].User), unsafe.StringData(out2[0].User))
	})
	t.Run("strict utf-8", func(t *testing.T) {
		bad := marshal(t, []Log{{"\xff", 1}})
		var out []Log
		require.NoError(t, Unmarshal(bad, &out, Options{}))
		assert.ErrorIs(t, Unmarshal(bad, &out, Options{StrictUTF8: true}), ErrNotText)
	})
	t.Run("borrowed bytes", func(t *testing.T) {
		type Blob struct {
			B []byte `arc:"intern"`
			C []byte `arc:"intern"`
		}
		bbuf := marshal(t, Blob{[]byte("xyz"), []byte("xyz")})
		var out Blob
		require.NoError(t, Unmarshal(bbuf, &out, Options{}))
		assert.Same(t, &out.B[0], &out.C[0])
		assert.False(t, inBuf(bbuf, &out.B[0]))
		require.NoError(t, Unmarshal(bbuf, &out, Options{Borrow: true}))
		assert.Same(t, &bbuf[0], &out.B[0])
	})
}

func TestInternedTextRejectsInvalidContent(t *testing.T) {
	type Who struct {
		Name intern.String `arc:"intern"`
	}
	buf := marshal(t, []Log{{"\xff", 1}})
	// a Who record has the same shape as the first field of a Log vector element
	pos, _, err := ReadRef(buf, len(buf)-RefLayout.Size)
	require.NoError(t, err)
	var w Who
	err = DeserializeAt(buf, pos, &w, nil, Options{})
	var de *DataError
	require.True(t, errors.As(err, &de))
	assert.ErrorIs(t, err, intern.ErrNotText)
}

func TestLayoutAndRootPos(t *testing.T) {
	l, err := LayoutOf(Log{})
	require.NoError(t, err)
	assert.Equal(t, Layout{12, 4}, l)
	l, err = LayoutOf(&Graph{})
	require.NoError(t, err)
	assert.Equal(t, Layout{44, 4}, l)
	_, err = LayoutOf(nil)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = RootPos(make([]byte, 3), RefLayout)
	assert.ErrorIs(t, err, ErrCorrupted)
	_, err = RootPos(make([]byte, 10), RefLayout)
	assert.ErrorIs(t, err, ErrCorrupted)
	pos, err := RootPos(make([]byte, 12), RefLayout)
	require.NoError(t, err)
	assert.Equal(t, 4, pos)
}

func TestDump(t *testing.T) {
	buf := marshal(t, fiveLogs)
	s, err := Dump(buf, fiveLogs)
	require.NoError(t, err)
	for _, line := range []string{
		"archive: 76 bytes, root 8/4 at 68\n",
		"@68 [5] -> @8\n",
		"  @8 [0] flatarc.Log\n",
		"    @8 User: -> @0+5 \"alice\"\n",
		"    @16 Code: 1\n",
		"    @56 User: -> @5+3 \"bob\"\n",
	} {
		assert.Contains(t, s, line)
	}

	tail := &Node{Name: "tail"}
	s, err = Dump(marshal(t, Graph{A: tail, B: tail}), &Graph{})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(s, "\"tail\""), s)
	assert.Contains(t, s, "(seen)")
	assert.Contains(t, s, "None: nil")

	_, err = Dump(buf[:3], fiveLogs)
	assert.ErrorIs(t, err, ErrCorrupted)
}

type chainLink struct {
	N    int32
	Next *chainLink `arc:"shared"`
}

type chainHolder struct {
	Head *chainLink `arc:"shared"`
	Tail *chainLink `arc:"shared"`
}

type treeNode struct {
	Name string
	Kids []treeNode
	Up   *treeNode `arc:"shared"`
}

type forest struct {
	Trees []treeNode
}

// chainHolder and forest are planned here for the first time, so the
// recursive types are only ever reached through their holders.
func TestRecursiveTypesReachedThroughHolder(t *testing.T) {
	l, err := LayoutOf(chainHolder{})
	require.NoError(t, err)
	assert.Equal(t, Layout{8, 4}, l)

	tail := &chainLink{3, nil}
	in := chainHolder{Head: &chainLink{1, &chainLink{2, tail}}, Tail: tail}
	var out chainHolder
	require.NoError(t, Unmarshal(marshal(t, in), &out, Options{}))
	assert.Equal(t, in, out)
	assert.Same(t, out.Tail, out.Head.Next.Next)

	root := &treeNode{Name: "root"}
	f := forest{Trees: []treeNode{{Name: "a", Kids: []treeNode{{Name: "b", Up: root}}}, *root}}
	var fout forest
	require.NoError(t, Unmarshal(marshal(t, f), &fout, Options{}))
	assert.Equal(t, f, fout)
}

type innerRec struct {
	A, B int32
}

type outerRec struct {
	In innerRec
	C  int32
}

type innerFirst struct {
	P  *innerRec `arc:"shared"`
	Q  *outerRec `arc:"shared"`
	P2 *innerRec `arc:"shared"`
}

type outerFirst struct {
	Q  *outerRec `arc:"shared"`
	P  *innerRec `arc:"shared"`
	P2 *innerRec `arc:"shared"`
}

type empty1 struct{}
type empty2 struct{}

type zeroSizeShared struct {
	A  []empty1 `arc:"shared"`
	B  []empty2 `arc:"shared"`
	PA *empty1  `arc:"shared"`
	PB *empty2  `arc:"shared"`
}

func TestSharedPointersIntoStructs(t *testing.T) {
	o := &outerRec{innerRec{1, 2}, 3}

	var a innerFirst
	require.NoError(t, Unmarshal(marshal(t, innerFirst{&o.In, o, &o.In}), &a, Options{}))
	assert.Equal(t, innerRec{1, 2}, *a.P)
	assert.Equal(t, *o, *a.Q)
	assert.Same(t, a.P, a.P2)

	var b outerFirst
	require.NoError(t, Unmarshal(marshal(t, outerFirst{o, &o.In, &o.In}), &b, Options{}))
	assert.Equal(t, *o, *b.Q)
	assert.Equal(t, innerRec{1, 2}, *b.P)
	assert.Same(t, b.P, b.P2)

	z := zeroSizeShared{make([]empty1, 3), make([]empty2, 3), &empty1{}, &empty2{}}
	var zout zeroSizeShared
	require.NoError(t, Unmarshal(marshal(t, z), &zout, Options{}))
	assert.Len(t, zout.A, 3)
	assert.Len(t, zout.B, 3)
	assert.NotNil(t, zout.PA)
	assert.NotNil(t, zout.PB)
}

func TestSharedKeysIncludeType(t *testing.T) {
	o := &outerRec{}
	a := NewDefaultAdapter(Options{})
	_, err := SerializeValue(a, innerFirst{&o.In, o, &o.In})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Serializer().shared.Len())

	m := NewSharedSerializeMap()
	k1 := SharedKey{Addr: 0x1000, Len: -1, Type: reflect.TypeOf(o)}
	k2 := SharedKey{Addr: 0x1000, Len: -1, Type: reflect.TypeOf(&o.In)}
	require.NoError(t, m.AddSharedPos(k1, 4))
	require.NoError(t, m.AddSharedPos(k2, 8))
	pos, ok := m.SharedPos(k2)
	assert.True(t, ok)
	assert.Equal(t, 8, pos)
}
