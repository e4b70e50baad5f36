package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/hangar-assets/constants"
)

// TestNukageSizzleDeterministic verifies two runs produce identical buffers
func TestNukageSizzleDeterministic(t *testing.T) {
	a := NukageSizzle()
	b := NukageSizzle()

	if a.Len() != b.Len() {
		t.Fatalf("run lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.Sample(i) != b.Sample(i) {
			t.Fatalf("sample %d differs between runs: %f vs %f", i, a.Sample(i), b.Sample(i))
		}
	}
}

// TestNukageSizzleLength verifies the post-trim buffer length
func TestNukageSizzleLength(t *testing.T) {
	buf := NukageSizzle()

	full := int(constants.AudioSampleRate * constants.NukageDuration)
	rate := float64(constants.AudioSampleRate)
	fade := int(constants.NukageLoopFade * rate)
	want := full - fade
	if buf.Len() != want {
		t.Errorf("Len() = %d, want %d", buf.Len(), want)
	}
}

// TestNukageSizzleLoopSeam verifies the crossfade leaves no step at the
// loop point: the first and last samples were adjacent in the source
// signal, so their gap must stay well under the clip peak
func TestNukageSizzleLoopSeam(t *testing.T) {
	buf := NukageSizzle()

	gap := math.Abs(buf.Sample(0) - buf.Sample(buf.Len()-1))
	if gap > constants.NukagePeak/2 {
		t.Errorf("loop seam gap = %f, want under %f", gap, constants.NukagePeak/2)
	}
}

// TestNukageSizzlePeak verifies normalization hits the declared target
func TestNukageSizzlePeak(t *testing.T) {
	buf := NukageSizzle()

	if peak := buf.Peak(); math.Abs(peak-constants.NukagePeak) > 1e-9 {
		t.Errorf("peak = %f, want %f", peak, constants.NukagePeak)
	}
}

// TestComputerHumDeterministic verifies two runs produce identical buffers
func TestComputerHumDeterministic(t *testing.T) {
	a := ComputerHum()
	b := ComputerHum()

	for i := 0; i < a.Len(); i++ {
		if a.Sample(i) != b.Sample(i) {
			t.Fatalf("sample %d differs between runs: %f vs %f", i, a.Sample(i), b.Sample(i))
		}
	}
}

// TestComputerHumFormat verifies length and normalization target
func TestComputerHumFormat(t *testing.T) {
	buf := ComputerHum()

	want := int(constants.AudioSampleRate * constants.HumDuration)
	if buf.Len() != want {
		t.Errorf("Len() = %d, want %d", buf.Len(), want)
	}
	if peak := buf.Peak(); math.Abs(peak-constants.HumPeak) > 1e-9 {
		t.Errorf("peak = %f, want %f", peak, constants.HumPeak)
	}
}

// TestAmbientQuantizedRange verifies every quantized sample stays within
// the 16-bit PCM bounds for both clips
func TestAmbientQuantizedRange(t *testing.T) {
	for _, tc := range []struct {
		name string
		buf  *Buffer
	}{
		{"nukage_sizzle", NukageSizzle()},
		{"computer_hum", ComputerHum()},
	} {
		for i, s := range tc.buf.Quantize() {
			if s < -32767 || s > 32767 {
				t.Fatalf("%s: quantized sample %d = %d, out of range", tc.name, i, s)
			}
		}
	}
}
