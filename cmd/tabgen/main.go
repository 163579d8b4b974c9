package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MrSnakeDoc/tabgen/internal/app"
	"github.com/MrSnakeDoc/tabgen/internal/cli"
	"github.com/MrSnakeDoc/tabgen/internal/config"
)

func main() {
	cmd := cli.NewRootCmd(config.Load(), app.StdIO())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "❌ tabgen failed: %v\n", err)
		os.Exit(1)
	}
}
