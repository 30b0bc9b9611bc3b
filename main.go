package main

import (
	"log/slog"
	"os"

	"softcanvas/compose"
	"softcanvas/parallel"

	"github.com/alecthomas/kong"
)

var cli struct {
	Jobs    int            `help:"Number of parallel workers. 0 uses one worker per CPU." default:"0"`
	Compose compose.CLICmd `cmd:"" help:"Compose images onto a colored software canvas"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("softcanvas"),
		kong.Description("Batch image compositor built on a software pixel canvas."),
	)

	pool := parallel.Start(cli.Jobs)
	if err := kctx.Run(pool); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
