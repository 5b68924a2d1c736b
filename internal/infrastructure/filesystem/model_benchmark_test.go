package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"DirView/internal/infrastructure/logging"
)

// populate は width 個のファイルとサブディレクトリを depth 階層分作成します
func populate(tb testing.TB, dir string, depth, width int) {
	tb.Helper()
	if depth <= 0 {
		return
	}
	for i := 0; i < width; i++ {
		file := filepath.Join(dir, fmt.Sprintf("file_%d_%d.log", depth, i))
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			tb.Fatalf("Failed to write file %s: %v", file, err)
		}
		sub := filepath.Join(dir, fmt.Sprintf("dir_%d_%d", depth, i))
		if err := os.Mkdir(sub, 0755); err != nil {
			tb.Fatalf("Failed to create dir %s: %v", sub, err)
		}
		populate(tb, sub, depth-1, width)
	}
}

// BenchmarkModel_Prefetch は新しいモデルでの先読みを計測します
func BenchmarkModel_Prefetch(b *testing.B) {
	logger := logging.NewJSONLogger(io.Discard)
	root := b.TempDir()
	populate(b, root, 3, 4)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		m := NewModel(logger)
		m.Prefetch(m.Index(root), 4)
	}
}
