package linked_list

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicErr 执行 fn 并返回它 panic 出来的 error
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value is %T", r)
		err = e
	}()
	fn()
	return nil
}

func build(values ...int) *List[int] {
	l := New[int]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

func TestPushIndex(t *testing.T) {
	values := []int{5, -1, 7, 7, 42, 0}
	l := New[int]()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, Nil, l.Start())

	for i, v := range values {
		l.Push(v)
		assert.Equal(t, i+1, l.Len())
	}

	for i, v := range values {
		assert.Equal(t, v, l.Index(i))
	}
	assert.Equal(t, values, l.Values())
}

func TestScenario(t *testing.T) {
	l := build(1, 2, 3)
	require.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Index(0))
	assert.Equal(t, 2, l.Index(1))
	assert.Equal(t, 3, l.Index(2))

	v, ok := l.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, l.Index(0))
	assert.Equal(t, 3, l.Index(1))
	assert.Equal(t, 2, l.Len())

	v, ok = l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, l.Len())

	v, ok = l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, Nil, l.Start())

	_, ok = l.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())
}

func TestPop(t *testing.T) {
	l := build(10, 20, 30, 40)

	v, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, 40, v)
	assert.Equal(t, []int{10, 20, 30}, l.Values())
	assert.Equal(t, 3, l.Len())

	empty := New[string]()
	s, ok := empty.Pop()
	assert.False(t, ok)
	assert.Equal(t, "", s)
	assert.Equal(t, 0, empty.Len())
}

func TestPushPopRoundTrip(t *testing.T) {
	l := New[int]()
	for i := 0; i < 200; i++ {
		l.Push(i)
	}

	var popped []int
	for {
		v, ok := l.Pop()
		if !ok {
			break
		}
		popped = append(popped, v)
	}

	require.Len(t, popped, 200)
	for i, v := range popped {
		assert.Equal(t, 199-i, v)
	}
	assert.Equal(t, 0, l.Arena().Len())
}

func TestRemove(t *testing.T) {
	t.Run("head", func(t *testing.T) {
		l := build(1, 2, 3, 4)
		v, ok := l.Remove(0)
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, []int{2, 3, 4}, l.Values())
	})

	t.Run("middle", func(t *testing.T) {
		l := build(1, 2, 3, 4, 5)
		v, ok := l.Remove(2)
		assert.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 2, 4, 5}, l.Values())
	})

	t.Run("tail", func(t *testing.T) {
		l := build(1, 2, 3)
		v, ok := l.Remove(2)
		assert.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 2}, l.Values())
	})

	t.Run("single", func(t *testing.T) {
		l := build(9)
		v, ok := l.Remove(0)
		assert.True(t, ok)
		assert.Equal(t, 9, v)
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, Nil, l.Start())
	})

	t.Run("empty", func(t *testing.T) {
		l := New[int]()
		_, ok := l.Remove(0)
		assert.False(t, ok)
		_, ok = l.Remove(3)
		assert.False(t, ok)
	})

	t.Run("head until empty", func(t *testing.T) {
		l := build(1, 2, 3)
		for want := 1; want <= 3; want++ {
			v, ok := l.Remove(0)
			require.True(t, ok)
			assert.Equal(t, want, v)
		}
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, Nil, l.Start())
	})
}

func TestInsert(t *testing.T) {
	l := build(1, 2, 3)
	l.Insert(0, 9)
	assert.Equal(t, []int{9, 1, 2, 3}, l.Values())
	assert.Equal(t, 4, l.Len())

	l.Insert(2, 8)
	assert.Equal(t, []int{9, 1, 8, 2, 3}, l.Values())

	l.Insert(l.Len(), 7)
	assert.Equal(t, []int{9, 1, 8, 2, 3, 7}, l.Values())
	assert.Equal(t, 6, l.Len())

	empty := New[int]()
	empty.Insert(0, 1)
	assert.Equal(t, []int{1}, empty.Values())
}

func TestInsertAtLenIsPush(t *testing.T) {
	a := build(1, 2)
	b := build(1, 2)

	a.Insert(a.Len(), 3)
	b.Push(3)

	assert.Equal(t, b.Values(), a.Values())
	assert.Equal(t, b.Len(), a.Len())
}

func TestIndexMut(t *testing.T) {
	l := build(1, 2, 3)
	p := l.IndexMut(1)
	*p = 20

	// 后续插入不会让指针失效
	for i := 0; i < 3*DefaultChunkSize; i++ {
		l.Push(i)
	}
	*p += 1
	assert.Equal(t, 21, l.Index(1))
}

func TestGetSet(t *testing.T) {
	l := build(1, 2, 3)

	v, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	require.NoError(t, l.Set(0, 100))
	assert.Equal(t, 100, l.Index(0))

	_, err = l.Get(3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = l.Get(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.True(t, errors.Is(l.Set(5, 1), ErrIndexOutOfRange))
}

func TestTryInsertTryRemove(t *testing.T) {
	l := New[int]()

	_, err := l.TryRemove(0)
	assert.ErrorIs(t, err, ErrEmpty)

	assert.ErrorIs(t, l.TryInsert(1, 1), ErrIndexOutOfRange)
	require.NoError(t, l.TryInsert(0, 1))
	require.NoError(t, l.TryInsert(0, 0))
	assert.Equal(t, []int{0, 1}, l.Values())

	_, err = l.TryRemove(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	v, err := l.TryRemove(1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{0}, l.Values())
}

func TestBoundaryPanics(t *testing.T) {
	l := build(1, 2, 3)

	for name, fn := range map[string]func(){
		"PtrTo":    func() { l.PtrTo(3) },
		"Index":    func() { l.Index(3) },
		"IndexMut": func() { l.IndexMut(-1) },
		"Remove":   func() { l.Remove(3) },
		"Insert":   func() { l.Insert(5, 0) },
	} {
		err := panicErr(t, fn)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), name)
	}

	// 越界检查发生在任何修改之前
	assert.Equal(t, []int{1, 2, 3}, l.Values())
}

func TestBrokenChain(t *testing.T) {
	l := build(1, 2, 3)
	// 只改记账不改链接，破坏长度约束
	l.setLen(5)

	err := panicErr(t, func() { l.Index(4) })
	assert.True(t, errors.Is(err, ErrBrokenChain))
	assert.True(t, errors.IsAssertionFailure(err))
}

func TestMissingStart(t *testing.T) {
	l := New[int]()
	l.setLen(1)

	err := panicErr(t, func() { l.Index(0) })
	assert.True(t, errors.Is(err, ErrNilHandle))
}

func TestClear(t *testing.T) {
	arena := NewArena[int](4)
	l := NewIn(arena)
	for i := 0; i < 10; i++ {
		l.Push(i)
	}
	require.Equal(t, 10, arena.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, Nil, l.Start())
	assert.Equal(t, 0, arena.Len())

	l.Push(1)
	assert.Equal(t, []int{1}, l.Values())
}

func TestAllStopsEarly(t *testing.T) {
	l := build(1, 2, 3, 4)

	var seen []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestZeroValueList(t *testing.T) {
	var l List[string]
	_, ok := l.Pop()
	assert.False(t, ok)
	assert.Empty(t, l.Values())

	l.Push("a")
	l.Insert(0, "b")
	assert.Equal(t, []string{"b", "a"}, l.Values())
}

func TestStructElements(t *testing.T) {
	type point struct{ X, Y int }

	l := New[point]()
	l.Push(point{1, 2})
	l.Push(point{3, 4})
	l.IndexMut(0).X = 10

	assert.Equal(t, point{10, 2}, l.Index(0))
	assert.Equal(t, "{10 2}, {3 4}", l.String())
}
