package linked_list

import "github.com/cockroachdb/errors"

// DefaultChunkSize 每个存储块包含的槽位数
const DefaultChunkSize = 64

// Arena 节点存储区。
//
// 存储按固定大小的块增长，已分配的块不会移动，所以槽位中数据的地址在槽位释放前一直有效。
// 释放的槽位通过 next 字段串成空闲链表，下次分配时优先复用。
//
// Arena 只负责"物理存储"；什么时候释放一个槽位由使用它的链表决定。
// 多个链表可以共享同一个 Arena，但不能共享节点。
type Arena[T any] struct {
	chunks    [][]Node[T]
	chunkSize int
	free      Handle // 空闲链表头
	used      int    // 曾经分配过的槽位数（高水位）
	live      int    // 当前存活的槽位数
}

// NewArena 创建存储区，chunkSize <= 0 时使用 DefaultChunkSize
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Len 返回存活的节点数
func (a *Arena[T]) Len() int {
	return a.live
}

// Cap 返回已分配的槽位总数
func (a *Arena[T]) Cap() int {
	return len(a.chunks) * a.chunkSize
}

func (a *Arena[T]) slot(h Handle) *Node[T] {
	i := int(h) - 1
	return &a.chunks[i/a.chunkSize][i%a.chunkSize]
}

// Node 按句柄取得节点。空句柄、越界句柄或已释放的句柄都是致命错误。
func (a *Arena[T]) Node(h Handle) *Node[T] {
	if h == Nil {
		panic(errors.WithAssertionFailure(ErrNilHandle))
	}
	if int(h) > a.used {
		panic(errors.WithAssertionFailure(
			errors.Wrapf(ErrReleasedHandle, "句柄 %d 从未分配", h)))
	}
	n := a.slot(h)
	if !n.live {
		panic(errors.WithAssertionFailure(
			errors.Wrapf(ErrReleasedHandle, "句柄 %d", h)))
	}
	return n
}

// SetNext 通过句柄直接修改节点的后继。
// 被修改的节点往往不是调用方手里持有的那个（例如插入时的前驱节点）。
func (a *Arena[T]) SetNext(h, next Handle) {
	a.Node(h).next = next
}

// alloc 把节点放进一个槽位并返回其句柄
func (a *Arena[T]) alloc(n Node[T]) Handle {
	var h Handle
	if a.free != Nil {
		h = a.free
		a.free = a.slot(h).next
	} else {
		if a.used == a.Cap() {
			a.chunks = append(a.chunks, make([]Node[T], a.chunkSize))
		}
		a.used++
		h = Handle(a.used)
	}

	s := a.slot(h)
	*s = n
	s.live = true
	a.live++
	return h
}

// release 取出节点的值，清空槽位并放回空闲链表。重复释放会 panic。
func (a *Arena[T]) release(h Handle) T {
	data := a.Node(h).data
	*a.slot(h) = Node[T]{next: a.free}
	a.free = h
	a.live--
	return data
}
