package linked_list

// Pop 删除并返回最后一个元素，空链表返回 false
func (l *List[T]) Pop() (T, bool) {
	var zero T
	switch l.length {
	case 0:
		return zero, false
	case 1:
		v := l.arena.release(l.start)
		l.setStart(Nil)
		l.setLen(0)
		return v, true
	}

	// 先断开倒数第二个节点的 next，再释放原来的尾节点
	prev := l.walk(l.length - 2)
	last := l.arena.Node(prev).next
	l.arena.SetNext(prev, Nil)
	v := l.arena.release(last)
	l.decLen()
	return v, true
}

// Remove 删除并返回第 i 个元素。空链表返回 false；非空时要求 0 <= i < Len()。
func (l *List[T]) Remove(i int) (T, bool) {
	var zero T
	if l.length == 0 {
		return zero, false
	}
	if err := l.checkIndex(i); err != nil {
		panic(err)
	}
	return l.removeAt(i), true
}

// TryRemove 同 Remove，空链表返回 ErrEmpty，越界返回 ErrIndexOutOfRange
func (l *List[T]) TryRemove(i int) (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmpty
	}
	if err := l.checkIndex(i); err != nil {
		return zero, err
	}
	return l.removeAt(i), nil
}

func (l *List[T]) removeAt(i int) T {
	if l.length == 1 || i == l.length-1 {
		v, _ := l.Pop()
		return v
	}

	if i == 0 {
		old := l.start
		l.setStart(l.arena.Node(old).next)
		v := l.arena.release(old)
		l.decLen()
		return v
	}

	// 前驱直接指向目标的后继，把目标从链中摘掉
	prev := l.walk(i - 1)
	target := l.arena.Node(prev).next
	l.arena.SetNext(prev, l.arena.Node(target).next)
	v := l.arena.release(target)
	l.decLen()
	return v
}

// Clear 释放所有节点
func (l *List[T]) Clear() {
	for h := l.start; h != Nil; {
		next := l.arena.Node(h).next
		l.arena.release(h)
		h = next
	}
	l.setStart(Nil)
	l.setLen(0)
}
