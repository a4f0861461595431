package render

import (
	"fmt"

	"github.com/dmrcv/ogkit/palette"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdFillRect   CommandType = iota // Fill a rectangle
	CmdStrokeRect                    // Stroke a rectangle inside its bounds
	CmdDrawImage                     // Draw a data URI image
	CmdDrawText                      // Draw one line of text
)

var commandTypeNames = [...]string{
	CmdFillRect:   "FillRect",
	CmdStrokeRect: "StrokeRect",
	CmdDrawImage:  "DrawImage",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every recorded command.
type Command interface {
	Type() CommandType
}

// Rect is an axis-aligned rectangle in scene units.
type Rect struct {
	X, Y, W, H float64
}

// FillRect fills Rect with Color.
type FillRect struct {
	Rect  Rect
	Color palette.RGB
}

// StrokeRect draws a border of the given width inside Rect.
type StrokeRect struct {
	Rect  Rect
	Color palette.RGB
	Width float64
}

// DrawImage stretches the image referenced by URI over Rect.
type DrawImage struct {
	Rect Rect
	URI  string
}

// DrawText draws one line of text. X is the left edge and Y the baseline.
type DrawText struct {
	Text    string
	X, Y    float64
	Width   float64 // measured advance including letter spacing
	Size    float64
	Weight  int
	Spacing float64 // extra advance after each rune, in scene units
	Color   palette.RGB
}

func (FillRect) Type() CommandType   { return CmdFillRect }
func (StrokeRect) Type() CommandType { return CmdStrokeRect }
func (DrawImage) Type() CommandType  { return CmdDrawImage }
func (DrawText) Type() CommandType   { return CmdDrawText }

// Recording is a laid-out scene as a flat list of commands in paint order.
type Recording struct {
	Width, Height float64
	Background    palette.RGB
	Commands      []Command
}

func (r *Recording) add(c Command) {
	r.Commands = append(r.Commands, c)
}

// Texts returns the DrawText commands in paint order.
func (r *Recording) Texts() []DrawText {
	var out []DrawText
	for _, c := range r.Commands {
		if t, ok := c.(DrawText); ok {
			out = append(out, t)
		}
	}
	return out
}

// Playback replays the commands into b. Begin and End are the caller's
// responsibility.
func (r *Recording) Playback(b Backend) error {
	for i, c := range r.Commands {
		var err error
		switch cmd := c.(type) {
		case FillRect:
			err = b.FillRect(cmd.Rect, cmd.Color)
		case StrokeRect:
			err = b.StrokeRect(cmd.Rect, cmd.Color, cmd.Width)
		case DrawImage:
			err = b.DrawImage(cmd.Rect, cmd.URI)
		case DrawText:
			err = b.DrawText(cmd)
		default:
			err = fmt.Errorf("render: unexpected command %T", c)
		}
		if err != nil {
			return fmt.Errorf("render: command %d (%s): %w", i, c.Type(), err)
		}
	}
	return nil
}
