package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmrcv/ogkit/cache"
	"github.com/dmrcv/ogkit/i18n"
	"github.com/dmrcv/ogkit/monogram"
	"github.com/dmrcv/ogkit/palette"
)

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func renderCard(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	langFlag := fs.String("lang", string(i18n.Default), "content language")
	slug := fs.String("slug", "", "post slug; empty renders the profile card")
	format := fs.String("format", "png", "png or svg")
	output := fs.String("o", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lang, ok := i18n.Parse(*langFlag)
	if !ok {
		return fmt.Errorf("unsupported language %q", *langFlag)
	}
	if *format != "png" && *format != "svg" {
		return fmt.Errorf("unsupported format %q", *format)
	}

	a, err := setup(*configPath, stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	var data []byte
	if *slug == "" {
		p, err := a.lib.ProfileCard(lang)
		if err != nil {
			return err
		}
		if *format == "svg" {
			svg, err := a.gen.ProfileSVG(ctx, p)
			if err != nil {
				return err
			}
			data = []byte(svg)
		} else if data, err = a.gen.ProfileImage(ctx, p); err != nil {
			return err
		}
	} else {
		p, err := a.lib.PostCard(lang, *slug)
		if err != nil {
			return err
		}
		if *format == "svg" {
			svg, err := a.gen.PostSVG(ctx, p)
			if err != nil {
				return err
			}
			data = []byte(svg)
		} else if data, err = a.gen.PostImage(ctx, p); err != nil {
			return err
		}
	}

	if err := writeOutput(*output, data, stdout); err != nil {
		return err
	}
	if *output != "" {
		okColor.Fprintf(stderr, "wrote %s ", *output)
		dimColor.Fprintf(stderr, "(%d bytes, v=%s)\n", len(data), cache.Hash(data))
	}
	return nil
}

func favicon(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("favicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", monogram.FaviconSize, "icon size in pixels")
	output := fs.String("o", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *size <= 0 {
		return errors.New("size must be positive")
	}

	icon := monogram.Default()
	if err := writeOutput(*output, []byte(icon.SVG(*size)), stdout); err != nil {
		return err
	}
	if *output != "" {
		okColor.Fprintf(stderr, "wrote %s ", *output)
		dimColor.Fprintf(stderr, "(%s, contrast %.1f)\n",
			icon.Color.Hex(), palette.Contrast(icon.Color, icon.Background))
	}
	return nil
}
