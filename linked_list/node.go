package linked_list

// Handle 节点句柄，即节点在 Arena 中的槽位编号（从1开始）。
// 零值 Nil 表示"没有后继"。
type Handle uint32

// Nil 空句柄
const Nil Handle = 0

// Node 单链表节点：一个元素值和指向后继节点的句柄
type Node[T any] struct {
	data T
	next Handle
	live bool
}

// NewNode 创建没有后继的节点
func NewNode[T any](data T) Node[T] {
	return Node[T]{data: data}
}

// NewNodeWithNext 创建带有指定后继的节点
func NewNodeWithNext[T any](data T, next Handle) Node[T] {
	return Node[T]{data: data, next: next}
}

// Data 返回节点的值
func (n *Node[T]) Data() T {
	return n.data
}

// SetData 修改节点的值
func (n *Node[T]) SetData(data T) {
	n.data = data
}

// Next 返回后继句柄，尾节点返回 Nil
func (n *Node[T]) Next() Handle {
	return n.next
}

// HasNext 是否存在后继节点
func (n *Node[T]) HasNext() bool {
	return n.next != Nil
}
