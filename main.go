// Asset generator for the hangar level. Produces looping ambient audio,
// billboard sprites, and tiling textures into audio/, sprites/, and
// textures/ under the output root. Every generator is deterministic:
// re-running yields byte-identical files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/hangar-assets/audio"
	"github.com/lixenwraith/hangar-assets/raster"
	"github.com/lixenwraith/hangar-assets/sprite"
	"github.com/lixenwraith/hangar-assets/texture"
)

func main() {
	var (
		out  string
		only string
	)
	flag.StringVar(&out, "out", ".", "Output root directory")
	flag.StringVar(&only, "only", "", "Generate a single category: 'audio', 'sprites', or 'textures'")
	flag.Parse()

	if err := run(out, only); err != nil {
		log.Fatal(err)
	}
}

func run(out, only string) error {
	if only == "" || only == "audio" {
		if err := generateAudio(filepath.Join(out, "audio")); err != nil {
			return err
		}
	}
	if only == "" || only == "sprites" {
		if err := generateSprites(filepath.Join(out, "sprites")); err != nil {
			return err
		}
	}
	if only == "" || only == "textures" {
		if err := generateTextures(filepath.Join(out, "textures")); err != nil {
			return err
		}
	}
	return nil
}

func generateAudio(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	log.Println("Generating ambient audio loops...")

	for _, clip := range []struct {
		name string
		gen  func() *audio.Buffer
	}{
		{"nukage_sizzle.wav", audio.NukageSizzle},
		{"computer_hum.wav", audio.ComputerHum},
	} {
		buf := clip.gen()
		if err := buf.WriteWAV(filepath.Join(dir, clip.name)); err != nil {
			return err
		}
		log.Printf("  %s (%d samples, %.1fs)", clip.name, buf.Len(), float64(buf.Len())/float64(buf.Rate()))
	}
	return nil
}

func generateSprites(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	log.Println("Generating decorative sprites...")

	for _, s := range []struct {
		name string
		gen  func() *raster.Canvas
	}{
		{"barrel.png", sprite.Barrel},
		{"computer_panel.png", sprite.ComputerPanel},
		{"tech_column.png", sprite.TechColumn},
	} {
		c := s.gen()
		if err := raster.SavePNG(c, filepath.Join(dir, s.name)); err != nil {
			return err
		}
		log.Printf("  %s (%dx%d)", s.name, c.Width(), c.Height())
	}
	return nil
}

func generateTextures(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	log.Println("Generating tiling textures (128x128)...")

	for _, e := range texture.All() {
		name := fmt.Sprintf("%s.png", e.Name)
		if err := raster.SaveOpaquePNG(e.Gen(), filepath.Join(dir, name)); err != nil {
			return err
		}
		log.Printf("  %s", name)
	}
	return nil
}
