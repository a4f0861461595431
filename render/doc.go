// Package render turns a scene tree into image bytes.
//
// Rendering runs in three stages:
//
//  1. Layout positions every node of the tree (a small flexbox subset, see
//     package scene) and wraps text with the faces of a FontSet.
//  2. The positioned tree is painted into a Recording, a flat list of typed
//     commands (FillRect, StrokeRect, DrawImage, DrawText) in paint order.
//  3. The recording is played back into a Backend chosen by name from the
//     registry. Two backends are built in: "png", a software rasterizer built
//     on gogpu/gg, and "svg", a vector document with the fonts embedded.
//
// Background images are data URIs. SVG payloads are rasterized with oksvg;
// PNG and JPEG payloads go through the standard image codecs.
//
// Basic usage:
//
//	fonts, err := render.DefaultFontSet()
//	if err != nil {
//	    return err
//	}
//	png, err := render.Render(root, fonts, 1200, 630)
package render
