package logging

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

// logEntry はJSONログの1行です
type logEntry struct {
	Timestamp string `json:"time"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		message string
		err     error
	}{
		{
			name:    "エラーなしのログ",
			level:   "info",
			message: "テストメッセージ",
			err:     nil,
		},
		{
			name:    "エラーありのログ",
			level:   "error",
			message: "エラーメッセージ",
			err:     errors.New("テストエラー"),
		},
		{
			name:    "大文字のレベル",
			level:   "WARN",
			message: "警告メッセージ",
			err:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := NewJSONLogger(&buf).WithLevel("debug")

			logger.Log(tt.level, tt.message, tt.err)

			// 出力を検証
			output := buf.String()
			var entry logEntry
			if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entry); err != nil {
				t.Fatalf("JSONの解析に失敗: %v", err)
			}

			if entry.Message != tt.message {
				t.Errorf("メッセージが不正: got %v, want %v", entry.Message, tt.message)
			}
			if entry.Level != strings.ToLower(tt.level) {
				t.Errorf("ログレベルが不正: got %v, want %v", entry.Level, strings.ToLower(tt.level))
			}
			if tt.err != nil {
				if entry.Error != tt.err.Error() {
					t.Errorf("エラーメッセージが不正: got %v, want %v", entry.Error, tt.err.Error())
				}
			} else if entry.Error != "" {
				t.Errorf("エラーメッセージが不正: got %v, want empty", entry.Error)
			}

			// タイムスタンプが現在時刻に近いことを確認
			logTime, err := time.Parse(time.RFC3339, entry.Timestamp)
			if err != nil {
				t.Errorf("タイムスタンプの解析に失敗: %v", err)
			}
			if time.Since(logTime) > time.Minute {
				t.Errorf("タイムスタンプが不正: got %v, 現在との差が1分以上", entry.Timestamp)
			}
		})
	}
}

func TestZerologLogger_WithLevel(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, "json", "warn")

	logger.Log("INFO", "出力されないメッセージ", nil)
	logger.Log("DEBUG", "出力されないメッセージ", nil)
	if buf.Len() != 0 {
		t.Fatalf("warn 未満のログが出力されました: %q", buf.String())
	}

	logger.Log("ERROR", "出力されるメッセージ", nil)
	if !strings.Contains(buf.String(), "出力されるメッセージ") {
		t.Errorf("error ログが出力されていません: %q", buf.String())
	}
}

func TestZerologLogger_UnknownLevel(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, "json", "nonsense")

	// 不明な最小レベルは warn として扱う
	logger.Log("info", "抑制される", nil)
	if buf.Len() != 0 {
		t.Errorf("不明なレベルで info が出力されました: %q", buf.String())
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, "console", "info")

	logger.Log("info", "コンソール出力", errors.New("原因"))

	output := buf.String()
	if !strings.Contains(output, "コンソール出力") {
		t.Errorf("メッセージが含まれていません: %q", output)
	}
	if !strings.Contains(output, "原因") {
		t.Errorf("エラーが含まれていません: %q", output)
	}
}
