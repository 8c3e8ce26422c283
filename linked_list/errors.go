package linked_list

import "github.com/cockroachdb/errors"

var (
	// ErrIndexOutOfRange 索引越界，属于调用方的编程错误
	ErrIndexOutOfRange = errors.New("索引越界")
	// ErrEmpty 对空链表执行弹出或删除
	ErrEmpty = errors.New("链表为空")
	// ErrBrokenChain 节点链比记录的长度短
	ErrBrokenChain = errors.New("节点链断裂")
	// ErrNilHandle 解引用了空句柄
	ErrNilHandle = errors.New("空节点句柄")
	// ErrReleasedHandle 访问了已释放的节点槽位
	ErrReleasedHandle = errors.New("节点已释放")
)

func outOfRange(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "索引 %d, 长度 %d", index, length)
}
