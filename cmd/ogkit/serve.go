package main

import (
	"context"
	"flag"
	"io"

	"go.uber.org/zap"

	"github.com/dmrcv/ogkit/internal/server"
)

func serve(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	listen := fs.String("listen", "", "listen address, overrides the config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := setup(*configPath, stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := a.cfg.Listen
	if *listen != "" {
		addr = *listen
	}
	okColor.Fprintf(stderr, "serving %s on %s\n", a.cfg.SiteURL, addr)
	a.log.Info("starting server",
		zap.String("addr", addr),
		zap.String("content", a.cfg.ContentDir),
		zap.String("cache_db", a.cfg.Cache.DB))
	return server.New(a.gen, a.lib).ListenAndServe(ctx, addr)
}
