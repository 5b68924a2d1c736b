package filesystem

import (
	"bufio"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"DirView/internal/domain/model"
)

// IconOption はアイコンプロバイダーの動作を変更するフラグです
type IconOption uint8

const (
	// DontUseCustomDirectoryIcons は特別なディレクトリにも通常のフォルダーアイコンを使います
	DontUseCustomDirectoryIcons IconOption = 1 << iota
)

// 既定のユーザーディレクトリ名（user-dirs.dirs が無い場合）
var defaultUserDirs = map[string]model.IconKind{
	"Desktop":   model.IconDesktop,
	"Documents": model.IconDocuments,
	"Downloads": model.IconDownloads,
	"Music":     model.IconMusic,
	"Pictures":  model.IconPictures,
	"Videos":    model.IconVideos,
}

var xdgUserDirKeys = map[string]model.IconKind{
	"XDG_DESKTOP_DIR":   model.IconDesktop,
	"XDG_DOCUMENTS_DIR": model.IconDocuments,
	"XDG_DOWNLOAD_DIR":  model.IconDownloads,
	"XDG_MUSIC_DIR":     model.IconMusic,
	"XDG_PICTURES_DIR":  model.IconPictures,
	"XDG_VIDEOS_DIR":    model.IconVideos,
}

// IconProvider は要素の種類からアイコンを決定します
type IconProvider struct {
	options IconOption
	custom  map[string]model.IconKind
}

// NewIconProvider はホームディレクトリとユーザーディレクトリに
// 専用アイコンを割り当てたプロバイダーを作成します
func NewIconProvider(home string) *IconProvider {
	p := &IconProvider{custom: make(map[string]model.IconKind)}
	if home == "" {
		return p
	}
	p.custom[filepath.Clean(home)] = model.IconHome

	dirs := userDirs(home)
	for path, kind := range dirs {
		p.custom[path] = kind
	}
	return p
}

// SetOptions はオプションを設定します
func (p *IconProvider) SetOptions(options IconOption) {
	p.options = options
}

// Options は現在のオプションを返します
func (p *IconProvider) Options() IconOption {
	return p.options
}

// Icon は要素のアイコンの種類を返します
func (p *IconProvider) Icon(entry model.FileSystemEntry) model.IconKind {
	if entry.IsDir {
		if p.options&DontUseCustomDirectoryIcons == 0 {
			if kind, ok := p.custom[filepath.Clean(entry.Path)]; ok {
				return kind
			}
		}
		return model.IconFolder
	}
	return fileIcon(entry)
}

func fileIcon(entry model.FileSystemEntry) model.IconKind {
	mimeType := mime.TypeByExtension(filepath.Ext(entry.Name))
	switch {
	case strings.HasPrefix(mimeType, "text/"):
		return model.IconText
	case strings.HasPrefix(mimeType, "image/"):
		return model.IconImage
	case strings.HasPrefix(mimeType, "audio/"):
		return model.IconAudio
	case strings.HasPrefix(mimeType, "video/"):
		return model.IconVideo
	case strings.HasPrefix(mimeType, "application/"), entry.Mode&0111 != 0:
		return model.IconApplication
	}
	return model.IconFile
}

// userDirs は user-dirs.dirs を読み、ユーザーディレクトリのパスとアイコンを返します
func userDirs(home string) map[string]model.IconKind {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	f, err := os.Open(filepath.Join(configHome, "user-dirs.dirs"))
	if err != nil {
		dirs := make(map[string]model.IconKind, len(defaultUserDirs))
		for name, kind := range defaultUserDirs {
			dirs[filepath.Join(home, name)] = kind
		}
		return dirs
	}
	defer f.Close()
	return parseUserDirs(f, home)
}

// parseUserDirs は XDG_xxx_DIR="$HOME/..." 形式の行を解釈します
func parseUserDirs(r io.Reader, home string) map[string]model.IconKind {
	dirs := make(map[string]model.IconKind)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		kind, known := xdgUserDirKeys[strings.TrimSpace(key)]
		if !known {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		value = strings.Replace(value, "$HOME", home, 1)
		if !filepath.IsAbs(value) {
			continue
		}
		value = filepath.Clean(value)
		// $HOME/ を指すエントリは「無効化」の意味なので除外する
		if value == filepath.Clean(home) {
			continue
		}
		dirs[value] = kind
	}
	return dirs
}
