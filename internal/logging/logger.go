// Package logging zerologによる構造化ログ
//
// 端末ではコンソール形式、それ以外（コンテナ等）ではJSON形式で出力する。
//
//	logger := logging.New(logging.Config{Level: "debug"})
//	logger.Info().Str("port", "3000").Msg("サーバーを開始しています")
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config ロガー設定
type Config struct {
	Level  string    // trace, debug, info, warn, error
	Format string    // auto, json, console
	Output io.Writer // 省略時はos.Stdout
}

// New 設定からロガーを作成
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var writer io.Writer = out
	if useConsole(cfg.Format, out) {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.DateTime,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := ParseLevel(cfg.Level)
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	// デバッグ時は呼び出し元を出力
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Nop 何も出力しないロガー（テスト用）
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel 文字列からログレベルを取得、不正な値はinfo
func ParseLevel(s string) zerolog.Level {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func useConsole(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case "json":
		return false
	case "console", "pretty":
		return true
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
