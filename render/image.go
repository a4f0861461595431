package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"net/url"
	"slices"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// decodeDataURI decodes an image data URI. SVG payloads are rasterized at
// w x h; bitmap payloads keep their natural size.
func decodeDataURI(uri string, w, h int) (image.Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: not a data uri", ErrUnsupportedImage)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: data uri has no payload", ErrUnsupportedImage)
	}
	params := strings.Split(meta, ";")
	mediaType := strings.ToLower(params[0])
	switch mediaType {
	case "image/svg+xml", "image/png", "image/jpeg":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImage, mediaType)
	}

	var data []byte
	if slices.Contains(params[1:], "base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("render: decode base64 payload: %w", err)
		}
		data = b
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("render: unescape payload: %w", err)
		}
		data = []byte(s)
	}

	if mediaType == "image/svg+xml" {
		return rasterizeSVG(data, w, h)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", mediaType, err)
	}
	return img, nil
}

func rasterizeSVG(data []byte, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty target %dx%d", ErrUnsupportedImage, w, h)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("render: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
