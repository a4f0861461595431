// Command ogkit serves and renders social cards and site icons.
//
// Usage:
//
//	ogkit serve    [-config ogkit.yaml]
//	ogkit render   [-config ogkit.yaml] -lang en [-slug post] [-format png|svg] [-o file]
//	ogkit favicon  [-size 64] [-o file]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/dmrcv/ogkit"
	"github.com/dmrcv/ogkit/cache"
	"github.com/dmrcv/ogkit/content"
	"github.com/dmrcv/ogkit/internal/config"
	"github.com/dmrcv/ogkit/internal/logging"
	"github.com/dmrcv/ogkit/render"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	errColor  = color.New(color.FgRed)
	dimColor  = color.New(color.FgHiBlack)
	headColor = color.New(color.FgCyan, color.Bold)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer) {
	headColor.Fprintln(w, "ogkit: social cards and site icons")
	fmt.Fprintln(w, "\ncommands:")
	fmt.Fprintln(w, "  serve    serve card images over HTTP")
	fmt.Fprintln(w, "  render   render one card to a file")
	fmt.Fprintln(w, "  favicon  write the monogram icon")
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "serve":
		err = serve(ctx, args[1:], stderr)
	case "render":
		err = renderCard(ctx, args[1:], stdout, stderr)
	case "favicon":
		err = favicon(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return 0
	default:
		errColor.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
	if err != nil {
		errColor.Fprintf(stderr, "ogkit %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

// app is everything a command needs once the configuration is loaded.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	gen    *ogkit.Generator
	lib    *content.Library
	closer io.Closer
}

func (a *app) Close() {
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.log.Warn("close cache", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

func setup(configPath string, console io.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Console: console,
	})
	if err != nil {
		return nil, err
	}
	logging.Install(log)

	a := &app{cfg: cfg, log: log}
	opts := []ogkit.Option{
		ogkit.WithFonts(render.NewFontLoader(cfg.Fonts.Regular, cfg.Fonts.Bold)),
		ogkit.WithCacheSoftLimit(cfg.Cache.SoftLimit),
	}
	if cfg.Cache.DB != "" {
		db, err := cache.OpenSQLite(cfg.Cache.DB)
		if err != nil {
			return nil, err
		}
		a.closer = db
		opts = append(opts, ogkit.WithCacheStore(db))
	}
	a.gen = ogkit.New(opts...)

	if a.lib, err = content.Load(cfg.ContentDir, cfg.SiteURL); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}
