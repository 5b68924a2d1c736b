// Package cli はコマンドラインインターフェースを提供します
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/spf13/cobra"

	"DirView/internal/gui"
	"DirView/internal/infrastructure/config"
	"DirView/internal/infrastructure/filesystem"
	"DirView/internal/infrastructure/logging"
	"DirView/internal/interface/ui"
	"DirView/internal/usecase/filter"
	"DirView/internal/usecase/report"
)

const fyneModulePath = "fyne.io/fyne/v2"

// runGUI と reportError はテストで差し替えます
var (
	runGUI      = gui.Run
	reportError = func(logger logging.Logger, title string, err error) {
		ui.NewErrorReporter(logger).Report(title, err)
	}
)

type rootOptions struct {
	noCustomIcons bool
	print         bool
	filterText    string
	depth         int
	configPath    string
}

// NewRootCmd はルートコマンドを作成します
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{depth: report.Unlimited}

	cmd := &cobra.Command{
		Use:   "dirview [path]",
		Short: "ディレクトリツリーを名前で絞り込みながら表示します",
		Long: `ディレクトリツリーを表示します。入力欄の文字列を名前に含む要素と、
その祖先のディレクトリだけが表示されます。

引数:
  path  開始ディレクトリ。

ウィンドウの大きさは画面サイズを window.scale（既定 1.5）で割った値です。
fyne は画面サイズを報告しないため、設定ファイル（$DIRVIEW_CONFIG または
<ユーザー設定ディレクトリ>/dirview/config.toml）の [window] に
available_width と available_height を指定してください。
未指定の場合、ウィンドウは既定の大きさで開きます。`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return run(cmd.Context(), stdout, stderr, opts, path)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Version = FyneVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVarP(&opts.noCustomIcons, "no-custom-icons", "c", false, "カスタムアイコンを無効にします。")
	flags.BoolVar(&opts.print, "print", false, "ウィンドウを開かずにツリーを標準出力に書き出します。")
	flags.StringVar(&opts.filterText, "filter", "", "--print で適用する名前フィルター。")
	flags.IntVar(&opts.depth, "depth", report.Unlimited, "--print で出力する階層数（-1 は無制限）。")
	flags.StringVar(&opts.configPath, "config", "", "設定ファイルのパス。")

	return cmd
}

// Execute はコマンドを実行し、プロセスの終了コードを返します
func Execute(ctx context.Context) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *rootOptions, path string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		if !opts.print {
			reportError(logging.New(stderr, "json", "error"), "設定の読み込みエラー", err)
		}
		return err
	}
	logger := logging.New(stderr, cfg.Log.Format, cfg.Log.Level)

	if opts.print {
		return printTree(stdout, logger, cfg, opts, path)
	}

	guiOpts := gui.Options{
		Path:               path,
		DisableCustomIcons: opts.noCustomIcons,
		Config:             cfg,
		Logger:             logger,
	}
	if err := runGUI(ctx, guiOpts, cfg.Model.Watch); err != nil {
		reportError(logger, "起動エラー", err)
		return fmt.Errorf("ウィンドウの表示に失敗しました: %w", err)
	}
	return nil
}

// printTree はウィンドウと同じ絞り込み・並べ替えでツリーを書き出します
func printTree(w io.Writer, logger logging.Logger, cfg *config.Config, opts *rootOptions, path string) error {
	// ファイルシステムモデルの初期化
	source := filesystem.NewModel(logger)
	rootPath := filesystem.DefaultRootPath(path)
	rootIndex := source.Index(rootPath)

	// 絞り込みは読み込み済みの子孫だけを見るため、出力する範囲を先に読み込む
	if opts.filterText != "" {
		if opts.depth == report.Unlimited {
			source.PrefetchAll(rootIndex)
		} else {
			source.Prefetch(rootIndex, max(cfg.Filter.PrefetchDepth, opts.depth))
		}
	}

	// プロキシモデルの初期化
	proxy := filter.NewProxyModel(source)
	proxy.SetRecursiveFilteringEnabled(true)
	proxy.SetCaseSensitive(cfg.Filter.CaseSensitive)
	proxy.SetFilterWildcard(filter.ContainsWildcard(opts.filterText))

	// ツリーの出力
	logger.Log("DEBUG", fmt.Sprintf("ツリーを出力します: %s", rootPath), nil)
	if err := report.NewGenerator(opts.depth).WriteTree(w, proxy, proxy.MapFromSource(rootIndex)); err != nil {
		return fmt.Errorf("ツリーの出力に失敗しました: %w", err)
	}
	return nil
}

// FyneVersion はリンクされている fyne のバージョンを返します
func FyneVersion() string {
	info, ok := debug.ReadBuildInfo()
	return versionFromBuildInfo(info, ok)
}

func versionFromBuildInfo(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != fyneModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
