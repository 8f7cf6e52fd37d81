package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" type:"path" default:"${config_file}" help:"HCL configuration file"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `help:"Disable coloured output"`

	Odds        OddsCmd        `cmd:"" default:"withargs" help:"Calculate win and tie odds for each hole"`
	Best        BestCmd        `cmd:"" help:"Show the best hand that can be made from some cards"`
	Compare     CompareCmd     `cmd:"" help:"Compare two holdings on a shared board"`
	Percentages PercentagesCmd `cmd:"" help:"Show how often a hole ends in each hand category"`
	Serve       ServeCmd       `cmd:"" help:"Serve odds over a WebSocket"`
}

// Globals is passed to each command's Run
type Globals struct {
	Config *config.Config
	Logger *log.Logger
	Stdout io.Writer
	Stderr io.Writer
	Color  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("poker-odds"),
		kong.Description("Texas Hold'em hand evaluation and odds calculator"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFilename,
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if cli.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	if cli.NoColor {
		tui.DisableColor()
	}

	return kctx.Run(&Globals{
		Config: cfg,
		Logger: logger,
		Stdout: stdout,
		Stderr: stderr,
		Color:  tui.ColorEnabled(),
	})
}
