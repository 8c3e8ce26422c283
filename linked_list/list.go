package linked_list

/*
泛型单链表

原理：
链表头只记录长度和首节点句柄，每个节点记录一个值和后继节点句柄。
节点不是链表自己分配的独立对象，而是 Arena 中的槽位：
- Arena 负责存储（可以由调用方创建并交给多个链表共用）
- 链表负责节点的"销毁时机"：只有 Pop / Remove / Clear 才会把槽位交还给 Arena

所有访问都是"链表头 -> 沿 next 逐个前进 -> 回到链表头更新计数"。

关键约束：
1. length 恰好等于从 start 出发沿 next 能走到的节点数
2. start 为 Nil 当且仅当 length == 0
3. 节点链不存在环

错误处理：
- 索引越界是调用方的编程错误，Index / Insert / Remove 等直接 panic
- Get / Set / TryInsert / TryRemove 提供返回 error 的版本
- 空链表上的 Pop / Remove 返回 false，不算错误

非并发安全，多协程使用时需要调用方自行加锁。
*/

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// List 单链表头
type List[T any] struct {
	length int
	start  Handle
	arena  *Arena[T]
}

// New 创建使用独立存储区的空链表
func New[T any]() *List[T] {
	return &List[T]{arena: NewArena[T](0)}
}

// NewIn 创建使用调用方提供的存储区的空链表
func NewIn[T any](arena *Arena[T]) *List[T] {
	if arena == nil {
		arena = NewArena[T](0)
	}
	return &List[T]{arena: arena}
}

func (l *List[T]) lazyInit() {
	if l.arena == nil {
		l.arena = NewArena[T](0)
	}
}

// Len 返回元素个数
func (l *List[T]) Len() int {
	return l.length
}

// Start 返回首节点句柄，空链表返回 Nil
func (l *List[T]) Start() Handle {
	return l.start
}

// Arena 返回链表使用的存储区
func (l *List[T]) Arena() *Arena[T] {
	l.lazyInit()
	return l.arena
}

// 以下几个记账函数不检查任何约束，只供插入和删除流程内部使用

func (l *List[T]) setStart(h Handle) { l.start = h }
func (l *List[T]) incLen()           { l.length++ }
func (l *List[T]) decLen()           { l.length-- }
func (l *List[T]) setLen(n int)      { l.length = n }

func (l *List[T]) checkIndex(i int) error {
	if i < 0 || i >= l.length {
		return outOfRange(i, l.length)
	}
	return nil
}

// PtrTo 返回第 i 个节点的句柄，要求 0 <= i < Len()
func (l *List[T]) PtrTo(i int) Handle {
	if err := l.checkIndex(i); err != nil {
		panic(err)
	}
	return l.walk(i)
}

// walk 从 start 出发前进 i 步。
// 节点链提前结束说明长度记账与链接不一致，直接 panic，不返回靠前的节点。
func (l *List[T]) walk(i int) Handle {
	h := l.start
	for ct := 0; ct < i; ct++ {
		next := l.arena.Node(h).next
		if next == Nil {
			panic(errors.WithAssertionFailure(errors.Wrapf(ErrBrokenChain,
				"在第 %d 个节点处结束, 目标 %d, 长度 %d", ct, i, l.length)))
		}
		h = next
	}
	return h
}

// Index 返回第 i 个元素
func (l *List[T]) Index(i int) T {
	return l.arena.Node(l.PtrTo(i)).data
}

// IndexMut 返回第 i 个元素的指针，节点被删除前一直有效
func (l *List[T]) IndexMut(i int) *T {
	return &l.arena.Node(l.PtrTo(i)).data
}

// Get 返回第 i 个元素，越界时返回错误
func (l *List[T]) Get(i int) (T, error) {
	if err := l.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return l.arena.Node(l.walk(i)).data, nil
}

// Set 修改第 i 个元素，越界时返回错误
func (l *List[T]) Set(i int, v T) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.arena.Node(l.walk(i)).SetData(v)
	return nil
}

// All 按顺序遍历所有元素
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.start; h != Nil; h = l.arena.Node(h).next {
			if !yield(l.arena.Node(h).data) {
				return
			}
		}
	}
}

// Values 返回所有元素的切片
func (l *List[T]) Values() []T {
	return slices.Collect(l.All())
}
