package screen

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/Wicked-Maze/internal/game"
	"github.com/Garsondee/Wicked-Maze/internal/maze"
)

var (
	wallColor  = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	labelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	flashColor = color.RGBA{R: 255, G: 236, B: 90, A: 255}
	exitColor  = color.RGBA{R: 255, G: 80, B: 120, A: 255}
	trailColor = color.RGBA{R: 255, G: 255, B: 255, A: 70}
	ballColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// faces holds the font sources used on the canvas.
type faces struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func loadFaces() (*faces, error) {
	reg, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular face: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold face: %w", err)
	}
	return &faces{regular: reg, bold: bold}, nil
}

// imageSink draws session frames onto an ebiten image at an offset.
type imageSink struct {
	dst        *ebiten.Image
	offX, offY float64
	side       float64
	faces      *faces
}

func (s *imageSink) pt(p maze.Point) (float32, float32) {
	return float32(p.X + s.offX), float32(p.Y + s.offY)
}

// Clear paints the canvas square with the background colour.
func (s *imageSink) Clear(bg color.Color) {
	vector.FillRect(s.dst, float32(s.offX), float32(s.offY), float32(s.side), float32(s.side), bg, false)
}

// DrawWall strokes the wall and writes its word just inside it.
func (s *imageSink) DrawWall(w game.WallSprite) {
	x0, y0 := s.pt(w.A)
	x1, y1 := s.pt(w.B)
	lc, tc := color.Color(wallColor), color.Color(labelColor)
	if w.Flash {
		lc, tc = flashColor, flashColor
	}
	vector.StrokeLine(s.dst, x0, y0, x1, y1, 1, lc, true)
	if w.Label == "" {
		return
	}
	s.drawText(w.Label, s.faces.regular, w.TextSize, w.LabelAt, w.Rotation, tc)
}

// DrawExit writes the exit marker centred on the exit cell.
func (s *imageSink) DrawExit(at maze.Point, size float64) {
	s.drawText("EXIT", s.faces.bold, size, at, 0, exitColor)
}

// DrawTrail connects consecutive trail points.
func (s *imageSink) DrawTrail(points []maze.Point, diameter float64) {
	for k := 1; k < len(points); k++ {
		x0, y0 := s.pt(points[k-1])
		x1, y1 := s.pt(points[k])
		vector.StrokeLine(s.dst, x0, y0, x1, y1, float32(diameter/2), trailColor, true)
	}
}

// DrawPlayer fills the ball.
func (s *imageSink) DrawPlayer(at maze.Point, diameter float64) {
	x, y := s.pt(at)
	vector.FillCircle(s.dst, x, y, float32(diameter/2), ballColor, true)
}

func (s *imageSink) drawText(str string, src *text.GoTextFaceSource, size float64, at maze.Point, rot float64, clr color.Color) {
	face := &text.GoTextFace{Source: src, Size: size}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Rotate(rot)
	op.GeoM.Translate(at.X+s.offX, at.Y+s.offY)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.dst, str, face, op)
}
