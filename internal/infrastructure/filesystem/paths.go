package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SystemRoot はファイルシステムのルートパスを返します
func SystemRoot() string {
	if runtime.GOOS == "windows" {
		if drive := os.Getenv("SystemDrive"); drive != "" {
			return drive + `\`
		}
		return `C:\`
	}
	return "/"
}

// ResolveRootPath は表示ルートとして使うパスを決定します。
// 指定パス、ホームディレクトリ、環境変数 HOME、ファイルシステムのルートの順に採用します
func ResolveRootPath(path string, homeDir func() (string, error), getenv func(string) string) string {
	if path != "" {
		return path
	}
	if homeDir != nil {
		if home, err := homeDir(); err == nil && home != "" {
			return home
		}
	}
	if getenv != nil {
		if home := getenv("HOME"); home != "" {
			return home
		}
	}
	return SystemRoot()
}

// DefaultRootPath は実行環境の情報で ResolveRootPath を呼び出します
func DefaultRootPath(path string) string {
	return ResolveRootPath(path, os.UserHomeDir, os.Getenv)
}

// isWithin は target が root 配下（root 自身を含む）にあるかどうかを返します
func isWithin(root, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// isHiddenName はドットで始まる名前を隠しファイルとして扱います
func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
