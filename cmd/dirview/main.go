// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"os"

	"DirView/internal/interface/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
