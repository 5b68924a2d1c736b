package filesystem

import (
	"path/filepath"
	"strings"
	"testing"

	"DirView/internal/domain/model"
)

func TestIconProvider_Icon(t *testing.T) {
	home := "/home/user"
	p := &IconProvider{custom: map[string]model.IconKind{
		home:                             model.IconHome,
		filepath.Join(home, "Downloads"): model.IconDownloads,
	}}

	tests := []struct {
		name  string
		entry model.FileSystemEntry
		want  model.IconKind
	}{
		{"ホーム", model.FileSystemEntry{Path: home, Name: "user", IsDir: true}, model.IconHome},
		{"末尾スラッシュ付きホーム", model.FileSystemEntry{Path: home + "/", Name: "user", IsDir: true}, model.IconHome},
		{"ダウンロード", model.FileSystemEntry{Path: filepath.Join(home, "Downloads"), Name: "Downloads", IsDir: true}, model.IconDownloads},
		{"通常のフォルダー", model.FileSystemEntry{Path: filepath.Join(home, "src"), Name: "src", IsDir: true}, model.IconFolder},
		{"画像", model.FileSystemEntry{Path: "/x/a.png", Name: "a.png"}, model.IconImage},
		{"HTML", model.FileSystemEntry{Path: "/x/a.html", Name: "a.html"}, model.IconText},
		{"実行ファイル", model.FileSystemEntry{Path: "/x/run", Name: "run", Mode: 0755}, model.IconApplication},
		{"不明なファイル", model.FileSystemEntry{Path: "/x/data", Name: "data", Mode: 0644}, model.IconFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Icon(tt.entry); got != tt.want {
				t.Errorf("Icon() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIconProvider_DontUseCustomDirectoryIcons(t *testing.T) {
	home := "/home/user"
	p := NewIconProvider(home)
	p.SetOptions(DontUseCustomDirectoryIcons)

	if p.Options() != DontUseCustomDirectoryIcons {
		t.Errorf("Options() = %v, want %v", p.Options(), DontUseCustomDirectoryIcons)
	}
	for _, path := range []string{home, filepath.Join(home, "Desktop")} {
		if got := p.Icon(model.FileSystemEntry{Path: path, IsDir: true}); got != model.IconFolder {
			t.Errorf("Icon(%s) = %v, want IconFolder", path, got)
		}
	}
	// ファイルのアイコンは影響を受けない
	if got := p.Icon(model.FileSystemEntry{Path: "/x/a.png", Name: "a.png"}); got != model.IconImage {
		t.Errorf("Icon(a.png) = %v, want IconImage", got)
	}
}

func TestParseUserDirs(t *testing.T) {
	home := "/home/user"
	input := `# コメント
XDG_DESKTOP_DIR="$HOME/Рабочий стол"
XDG_DOWNLOAD_DIR="$HOME/Загрузки"
XDG_TEMPLATES_DIR="$HOME/Templates"
XDG_MUSIC_DIR="$HOME/"
XDG_VIDEOS_DIR="relative/path"
broken line
`
	dirs := parseUserDirs(strings.NewReader(input), home)

	want := map[string]model.IconKind{
		filepath.Join(home, "Рабочий стол"): model.IconDesktop,
		filepath.Join(home, "Загрузки"):     model.IconDownloads,
	}
	if len(dirs) != len(want) {
		t.Fatalf("parseUserDirs() = %v, want %v", dirs, want)
	}
	for path, kind := range want {
		if dirs[path] != kind {
			t.Errorf("dirs[%q] = %v, want %v", path, dirs[path], kind)
		}
	}
}
