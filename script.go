package main

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/strive/sll/linked_list"
)

// ErrBadOp 脚本中的操作无法解析
var ErrBadOp = errors.New("无效的操作")

// OpKind 操作类型
type OpKind int

const (
	OpPush OpKind = iota
	OpInsert
	OpPop
	OpRemove
	OpGet
	OpSet
	OpLen
	OpPrint
	OpClear
)

var opNames = [...]string{"push", "insert", "pop", "remove", "get", "set", "len", "print", "clear"}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return "OpKind(" + strconv.Itoa(int(k)) + ")"
	}
	return opNames[k]
}

// 每种操作需要的整数参数个数
var opArgs = [...]int{1, 2, 0, 1, 1, 2, 0, 0, 0}

// Op 一条操作
type Op struct {
	Kind  OpKind
	Index int
	Value int
}

// ParseScript 解析操作脚本，操作之间以 ; 或换行分隔
func ParseScript(src string) ([]Op, error) {
	var ops []Op
	n := 0
	for _, raw := range strings.FieldsFunc(src, func(r rune) bool { return r == ';' || r == '\n' }) {
		words := strings.Fields(raw)
		if len(words) == 0 {
			continue
		}
		n++
		op, err := parseOp(words)
		if err != nil {
			return nil, errors.Wrapf(err, "第 %d 个操作 %q", n, strings.Join(words, " "))
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOp(words []string) (Op, error) {
	kind := OpKind(-1)
	for i, name := range opNames {
		if strings.EqualFold(words[0], name) {
			kind = OpKind(i)
			break
		}
	}
	if kind < 0 {
		return Op{}, errors.Wrapf(ErrBadOp, "未知操作 %s", words[0])
	}

	args := words[1:]
	if len(args) != opArgs[kind] {
		return Op{}, errors.Wrapf(ErrBadOp, "需要 %d 个参数, 实际 %d 个", opArgs[kind], len(args))
	}

	nums := make([]int, len(args))
	for i, w := range args {
		x, err := strconv.Atoi(w)
		if err != nil {
			return Op{}, errors.Wrapf(ErrBadOp, "参数 %q 不是整数", w)
		}
		nums[i] = x
	}

	op := Op{Kind: kind}
	switch kind {
	case OpPush:
		op.Value = nums[0]
	case OpInsert, OpSet:
		op.Index, op.Value = nums[0], nums[1]
	case OpRemove, OpGet:
		op.Index = nums[0]
	}
	return op, nil
}

// Run 依次执行操作，返回产生的输出行。
// 越界等错误会中止执行并返回已产生的输出。
func Run(ops []Op, l *linked_list.List[int], logger *zap.Logger) ([]string, error) {
	var out []string
	for i, op := range ops {
		line, err := apply(op, l)
		if err != nil {
			return out, errors.Wrapf(err, "执行第 %d 个操作 %s 失败", i+1, op.Kind)
		}
		logger.Debug("apply",
			zap.Stringer("op", op.Kind),
			zap.Int("index", op.Index),
			zap.Int("value", op.Value),
			zap.Int("len", l.Len()),
		)
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

func apply(op Op, l *linked_list.List[int]) (string, error) {
	switch op.Kind {
	case OpPush:
		l.Push(op.Value)
		return "", nil
	case OpInsert:
		return "", l.TryInsert(op.Index, op.Value)
	case OpPop:
		v, ok := l.Pop()
		if !ok {
			return "none", nil
		}
		return strconv.Itoa(v), nil
	case OpRemove:
		v, err := l.TryRemove(op.Index)
		if errors.Is(err, linked_list.ErrEmpty) {
			return "none", nil
		}
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case OpGet:
		v, err := l.Get(op.Index)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil
	case OpSet:
		return "", l.Set(op.Index, op.Value)
	case OpLen:
		return strconv.Itoa(l.Len()), nil
	case OpPrint:
		s, err := l.Render()
		if errors.Is(err, linked_list.ErrEmpty) {
			return "[]", nil
		}
		return "[" + s + "]", nil
	case OpClear:
		l.Clear()
		return "", nil
	}
	return "", errors.AssertionFailedf("未知操作类型 %d", op.Kind)
}
