package linked_list

import (
	"fmt"
	"strings"
)

// String 用 ", " 连接所有元素的默认字符串形式。
// 总是先取第0个元素，所以对空链表调用会 panic（越界）。
func (l *List[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", l.Index(0))
	for h := l.arena.Node(l.start).next; h != Nil; h = l.arena.Node(h).next {
		fmt.Fprintf(&b, ", %v", l.arena.Node(h).data)
	}
	return b.String()
}

// Render 同 String，空链表返回 ErrEmpty
func (l *List[T]) Render() (string, error) {
	if l.length == 0 {
		return "", ErrEmpty
	}
	return l.String(), nil
}
