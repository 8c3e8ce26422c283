package linked_list

// Push 在尾部追加元素：分配槽位、链接、更新长度一次完成
func (l *List[T]) Push(v T) {
	l.lazyInit()
	h := l.arena.alloc(NewNode(v))
	if l.start == Nil {
		l.setStart(h)
	} else {
		l.arena.SetNext(l.walk(l.length-1), h)
	}
	l.incLen()
}

// Insert 在位置 i 插入元素，要求 0 <= i <= Len()，i == Len() 等同于 Push
func (l *List[T]) Insert(i int, v T) {
	if err := l.checkInsert(i); err != nil {
		panic(err)
	}
	l.insertAt(i, v)
}

// TryInsert 同 Insert，越界时返回错误
func (l *List[T]) TryInsert(i int, v T) error {
	if err := l.checkInsert(i); err != nil {
		return err
	}
	l.insertAt(i, v)
	return nil
}

func (l *List[T]) checkInsert(i int) error {
	if i < 0 || i > l.length {
		return outOfRange(i, l.length)
	}
	return nil
}

func (l *List[T]) insertAt(i int, v T) {
	if i == l.length {
		l.Push(v)
		return
	}

	// 新节点先指向后继，再接到前驱上
	after := l.walk(i)
	h := l.arena.alloc(NewNodeWithNext(v, after))
	if i == 0 {
		l.setStart(h)
	} else {
		l.arena.SetNext(l.walk(i-1), h)
	}
	l.incLen()
}
