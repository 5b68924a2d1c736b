package gui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DriverInitFailure(t *testing.T) {
	orig := newApp
	newApp = func() fyne.App {
		panic("X11 に接続できません")
	}
	t.Cleanup(func() { newApp = orig })

	err := Run(context.Background(), Options{Path: t.TempDir(), Display: NoDisplay{}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X11 に接続できません")
}

func TestOpenWindow(t *testing.T) {
	orig := newApp
	newApp = func() fyne.App {
		return test.NewTempApp(t)
	}
	t.Cleanup(func() { newApp = orig })

	root := setupTree(t)
	browser, err := openWindow(Options{Path: root, Display: NoDisplay{}})
	require.NoError(t, err)
	t.Cleanup(browser.window.Close)
	assert.Equal(t, root, browser.Path())
	assert.Equal(t, WindowTitle, browser.window.Title())
}
