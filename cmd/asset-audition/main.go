// Plays a generated ambient loop through the speakers so loop seams can
// be checked by ear.
//
//	asset-audition audio/nukage_sizzle.wav        # loop until Ctrl+C
//	asset-audition -n 4 audio/computer_hum.wav    # play four passes
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

func main() {
	var loops int
	flag.IntVar(&loops, "n", -1, "Number of passes (-1 = loop until interrupted)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: asset-audition [-n passes] <clip.wav>")
		os.Exit(1)
	}

	if err := play(flag.Arg(0), loops); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(path string, loops int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(beep.Loop(loops, streamer), beep.Callback(func() {
		close(done)
	})))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	select {
	case <-done:
	case <-interrupt:
	}
	speaker.Clear()
	return nil
}
