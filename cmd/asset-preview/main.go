// Terminal viewer for generated assets. Renders PNGs with half-block
// characters (two pixels per cell) so sprites and textures can be
// checked without leaving the terminal.
//
//	asset-preview textures/brown_brick.png sprites/barrel.png
//
// Keys: n/space = next image, p = previous, q/ESC = quit.
package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: asset-preview <image.png> [more.png ...]")
		os.Exit(1)
	}
	paths := os.Args[1:]

	images := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := loadImage(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", p, err)
			os.Exit(1)
		}
		images = append(images, img)
	}

	if err := view(paths, images); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func view(paths []string, images []image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	current := 0
	for {
		screen.Clear()
		drawImage(screen, images[current])
		drawCaption(screen, fmt.Sprintf("%s  [%d/%d]  n=next p=prev q=quit", paths[current], current+1, len(images)))
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'n' || ev.Rune() == ' ':
				current = (current + 1) % len(images)
			case ev.Rune() == 'p':
				current = (current - 1 + len(images)) % len(images)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// drawImage renders the image centered, one cell per 1×2 pixel pair:
// the upper half block carries the top pixel as foreground, the cell
// background carries the bottom pixel. Transparent pixels fall through
// to black.
func drawImage(screen tcell.Screen, img image.Image) {
	bounds := img.Bounds()
	cols := bounds.Dx()
	rows := (bounds.Dy() + 1) / 2

	termW, termH := screen.Size()
	offX := (termW - cols) / 2
	offY := (termH - rows) / 2
	if offX < 0 {
		offX = 0
	}
	if offY < 0 {
		offY = 0
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := pixelColor(img, bounds.Min.X+col, bounds.Min.Y+row*2)
			bottom := pixelColor(img, bounds.Min.X+col, bounds.Min.Y+row*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			screen.SetContent(offX+col, offY+row, '▀', nil, style)
		}
	}
}

func pixelColor(img image.Image, x, y int) tcell.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return tcell.ColorBlack
	}
	r, g, b, a := img.At(x, y).RGBA()
	if a == 0 {
		return tcell.ColorBlack
	}
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func drawCaption(screen tcell.Screen, text string) {
	_, termH := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range text {
		screen.SetContent(i, termH-1, r, nil, style)
	}
}
