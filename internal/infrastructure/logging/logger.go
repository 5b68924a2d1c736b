// Package logging はロギング機能を提供します
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// ZerologLogger はzerologでログを出力するロガーです
type ZerologLogger struct {
	zlog zerolog.Logger
}

// NewJSONLogger は新しいJSON形式のロガーを作成します
func NewJSONLogger(writer io.Writer) *ZerologLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &ZerologLogger{
		zlog: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger は人間向けのコンソール形式のロガーを作成します
func NewConsoleLogger(writer io.Writer) *ZerologLogger {
	if writer == nil {
		writer = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        writer,
		TimeFormat: "15:04:05",
	}
	return &ZerologLogger{
		zlog: zerolog.New(output).With().Timestamp().Logger(),
	}
}

// New は形式名とレベル名からロガーを作成します。不明なレベルは warn として扱います
func New(writer io.Writer, format, level string) *ZerologLogger {
	var l *ZerologLogger
	if format == "console" {
		l = NewConsoleLogger(writer)
	} else {
		l = NewJSONLogger(writer)
	}
	return l.WithLevel(level)
}

// WithLevel は最小レベルを設定したロガーを返します
func (l *ZerologLogger) WithLevel(level string) *ZerologLogger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return &ZerologLogger{zlog: l.zlog.Level(lvl)}
}

// Log はメッセージを指定レベルでログ出力します
func (l *ZerologLogger) Log(level, message string, err error) {
	lvl, parseErr := zerolog.ParseLevel(strings.ToLower(level))
	if parseErr != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	event := l.zlog.WithLevel(lvl)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(message)
}

// Nop は何も出力しないロガーです
type Nop struct{}

// Log は何もしません
func (Nop) Log(string, string, error) {}
