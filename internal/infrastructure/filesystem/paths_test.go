package filesystem

import (
	"errors"
	"runtime"
	"testing"
)

func TestResolveRootPath(t *testing.T) {
	home := func(dir string, err error) func() (string, error) {
		return func() (string, error) { return dir, err }
	}
	env := func(value string) func(string) string {
		return func(key string) string {
			if key == "HOME" {
				return value
			}
			return ""
		}
	}

	tests := []struct {
		name    string
		path    string
		homeDir func() (string, error)
		getenv  func(string) string
		want    string
	}{
		{"指定パスを優先", "/tmp", home("/home/user", nil), env("/env/home"), "/tmp"},
		{"ホームディレクトリ", "", home("/home/user", nil), env("/env/home"), "/home/user"},
		{"別のホームディレクトリ", "", home("/var/lib/svc", nil), env(""), "/var/lib/svc"},
		{"ホームが取得できない場合は環境変数", "", home("", errors.New("no home")), env("/env/home"), "/env/home"},
		{"どちらも無い場合はルート", "", home("", errors.New("no home")), env(""), SystemRoot()},
		{"関数が nil", "", nil, nil, SystemRoot()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRootPath(tt.path, tt.homeDir, tt.getenv); got != tt.want {
				t.Errorf("ResolveRootPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSystemRoot(t *testing.T) {
	if runtime.GOOS != "windows" && SystemRoot() != "/" {
		t.Errorf("SystemRoot() = %v, want /", SystemRoot())
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		root, target string
		want         bool
	}{
		{"/", "/tmp", true},
		{"/tmp", "/tmp", true},
		{"/tmp", "/tmp/a/b", true},
		{"/tmp", "/tmpx", false},
		{"/tmp/a", "/tmp", false},
		{"/tmp", "/tmp/..hidden", true},
	}
	for _, tt := range tests {
		if got := isWithin(tt.root, tt.target); got != tt.want {
			t.Errorf("isWithin(%q, %q) = %v, want %v", tt.root, tt.target, got, tt.want)
		}
	}
}
