package main

import (
	"fmt"

	"github.com/strive/sll/linked_list"
)

// 场景示例：单链表的追加、插入、删除和弹出
func LinkedListDemo() {
	l := linked_list.New[int]()

	fmt.Println("单链表示例:")
	l.Push(1)
	l.Push(2)
	l.Push(3)
	printList("追加 1, 2, 3", l)

	l.Insert(0, 9)
	printList("在位置0插入9", l)

	if v, ok := l.Remove(2); ok {
		fmt.Printf("删除位置2: %d\n", v)
	}
	printList("删除后", l)

	// 弹出直到为空，顺序与追加相反
	for {
		v, ok := l.Pop()
		if !ok {
			fmt.Println("链表已空")
			break
		}
		fmt.Printf("弹出: %d, 剩余长度 %d\n", v, l.Len())
	}

	// 多个链表共用一个存储区，删除的槽位会被复用
	arena := linked_list.NewArena[int](4)
	a := linked_list.NewIn(arena)
	b := linked_list.NewIn(arena)
	for i := 0; i < 4; i++ {
		a.Push(i)
		b.Push(i * 100)
	}
	a.Remove(1)
	b.Push(400)
	printList("共享存储区 a", a)
	printList("共享存储区 b", b)
	fmt.Printf("存储区: 存活 %d, 容量 %d\n", arena.Len(), arena.Cap())
}

// 辅助函数：打印链表
func printList(title string, l *linked_list.List[int]) {
	s, err := l.Render()
	if err != nil {
		s = ""
	}
	fmt.Printf("%s: [%s] (长度 %d)\n", title, s, l.Len())
}
