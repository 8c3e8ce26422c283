package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 命令行程序的配置，优先级：命令行参数 > SLL_* 环境变量 > 配置文件 > 默认值
type Config struct {
	Ops       string // 操作脚本，以 ; 或换行分隔
	File      string // 从文件读取操作脚本
	ChunkSize int    // 节点存储区每块的槽位数
	LogLevel  string
	JSONLog   bool
	Demo      bool
}

func loadConfig(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("sll", pflag.ContinueOnError)
	fs.String("ops", "", "操作脚本, 例如 \"push 1; push 2; insert 0 9; print\"")
	fs.String("file", "", "从文件读取操作脚本")
	fs.Int("chunk-size", 0, "存储区每块的槽位数, <=0 使用默认值")
	fs.String("log-level", "info", "日志级别 (debug, info, warn, error)")
	fs.Bool("json-log", false, "输出 JSON 格式日志")
	fs.Bool("demo", false, "运行链表演示")
	fs.String("config", "", "配置文件路径")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "解析命令行参数失败")
	}

	v := viper.New()
	v.SetEnvPrefix("sll")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "绑定命令行参数失败")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "读取配置文件 %s 失败", path)
		}
	}

	return &Config{
		Ops:       v.GetString("ops"),
		File:      v.GetString("file"),
		ChunkSize: v.GetInt("chunk-size"),
		LogLevel:  v.GetString("log-level"),
		JSONLog:   v.GetBool("json-log"),
		Demo:      v.GetBool("demo"),
	}, nil
}

func newLogger(level string, json bool) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "无效的日志级别 %q", level)
	}

	zc := zap.NewDevelopmentConfig()
	if json {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
