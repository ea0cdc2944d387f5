package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/benjaminschreck/docx2html/internal/config"
	"github.com/benjaminschreck/docx2html/internal/dlog"
	"github.com/benjaminschreck/docx2html/internal/document"
	"github.com/benjaminschreck/docx2html/internal/htmlwriter"
	"github.com/benjaminschreck/docx2html/internal/lookup"
	"github.com/benjaminschreck/docx2html/internal/mdwriter"
)

func main() {
	app := &cli.Command{
		Name:  "docx2html",
		Usage: "reads a DOCX document body into semantic HTML or Markdown",
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "convert a .docx file to HTML or Markdown",
				ArgsUsage: "SOURCE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "html", Usage: "output `FORMAT`: html or markdown"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
					&cli.BoolFlag{Name: "strict", Usage: "treat body-reader warnings as a failure"},
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (TOML)"},
					&cli.StringFlag{Name: "log-level", Value: "info", Usage: "log level: debug, info, warn, error"},
				},
				Action: runConvert,
			},
			{
				Name:      "messages",
				Usage:     "convert a .docx file and print its warning messages only",
				ArgsUsage: "SOURCE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (TOML)"},
					&cli.StringFlag{Name: "log-level", Value: "info", Usage: "log level: debug, info, warn, error"},
				},
				Action: runMessages,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "docx2html: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	level := cmd.String("log-level")
	if !cmd.IsSet("log-level") {
		level = cfg.LogLevel
	}
	logger, err := dlog.New(level, level == "debug")
	if err != nil {
		return err
	}
	dlog.Set(logger)
	return nil
}

func convertSource(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() == 0 {
		return "", cli.Exit("missing SOURCE argument", 1)
	}
	return cmd.Args().Get(0), nil
}

func runConvert(ctx context.Context, cmd *cli.Command) error {
	if err := setupLogger(cmd); err != nil {
		return err
	}
	source, err := convertSource(cmd)
	if err != nil {
		return err
	}

	files := lookup.DirFiles{Root: filepath.Dir(source)}
	doc, messages, err := document.Convert(source, files)
	if err != nil {
		return err
	}

	for _, m := range messages {
		dlog.Get().Warn(m.Text, zap.String("type", m.Type))
	}
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	strict := cfg.StrictMode
	if cmd.IsSet("strict") {
		strict = cmd.Bool("strict")
	}
	if strict && len(messages) > 0 {
		return cli.Exit(fmt.Sprintf("%d warning(s) in strict mode", len(messages)), 2)
	}

	out := os.Stdout
	if dest := cmd.String("out"); dest != "" {
		f, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("unable to create %q: %w", dest, err)
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(cmd.String("format")) {
	case "markdown", "md":
		return mdwriter.Render(out, doc)
	default:
		return htmlwriter.Render(out, doc)
	}
}

func runMessages(ctx context.Context, cmd *cli.Command) error {
	if err := setupLogger(cmd); err != nil {
		return err
	}
	source, err := convertSource(cmd)
	if err != nil {
		return err
	}

	files := lookup.DirFiles{Root: filepath.Dir(source)}
	_, messages, err := document.Convert(source, files)
	if err != nil {
		return err
	}
	for _, m := range messages {
		fmt.Printf("[%s] %s\n", m.Type, m.Text)
	}
	return nil
}
