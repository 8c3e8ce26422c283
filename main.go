package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/strive/sll/linked_list"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := newLogger(cfg.LogLevel, cfg.JSONLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer logger.Sync()

	src := cfg.Ops
	if cfg.File != "" {
		b, err := os.ReadFile(cfg.File)
		if err != nil {
			logger.Error("读取脚本失败", zap.String("file", cfg.File), zap.Error(err))
			return 1
		}
		src = string(b)
	}

	if cfg.Demo || strings.TrimSpace(src) == "" {
		LinkedListDemo()
		return 0
	}

	ops, err := ParseScript(src)
	if err != nil {
		logger.Error("解析脚本失败", zap.Error(err))
		return 1
	}

	l := linked_list.NewIn(linked_list.NewArena[int](cfg.ChunkSize))
	out, err := Run(ops, l, logger)
	for _, line := range out {
		fmt.Println(line)
	}
	if err != nil {
		logger.Error("执行失败", zap.Error(err))
		return 1
	}

	logger.Info("执行完成",
		zap.Int("ops", len(ops)),
		zap.Int("len", l.Len()),
		zap.Int("arena_cap", l.Arena().Cap()),
	)
	return 0
}
