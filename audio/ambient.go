package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/hangar-assets/constants"
)

// NukageSizzle synthesizes the toxic pool ambience: a bounded brown
// noise rumble, sine-burst bubble pops at random intervals, and a
// high-frequency fizz overlay, crossfaded into a seamless loop.
// Output is a pure function of the fixed seed.
func NukageSizzle() *Buffer {
	rng := rand.New(rand.NewSource(constants.NukageSeed))
	buf := NewBuffer(constants.AudioSampleRate, constants.NukageDuration)
	rate := float64(buf.Rate())
	n := buf.Len()

	// Layer 1: brown noise. The decay keeps the walk from drifting.
	brown := 0.0
	for i := 0; i < n; i++ {
		brown += rng.NormFloat64() * constants.NukageBrownSigma
		brown *= constants.NukageBrownDecay
		buf.samples[i] += brown * constants.NukageBrownGain
	}

	// Layer 2: bubble pops. Each pop is a short sine burst under a
	// half-sine envelope for click-free attack and decay. Bursts that
	// start past the buffer end are dropped by Add.
	t := 0.0
	for t < constants.NukageDuration {
		t += uniform(rng, constants.PopIntervalMin, constants.PopIntervalMax)
		popStart := int(t * rate)
		popLen := int(uniform(rng, constants.PopDurationMin, constants.PopDurationMax) * rate)
		popFreq := uniform(rng, constants.PopFreqMin, constants.PopFreqMax)
		popVol := uniform(rng, constants.PopVolumeMin, constants.PopVolumeMax)
		for j := 0; j < popLen; j++ {
			env := math.Sin(math.Pi * float64(j) / float64(popLen))
			burst := math.Sin(2*math.Pi*popFreq*float64(j)/rate) * env * popVol
			buf.Add(popStart+j, burst)
		}
	}

	// Layer 3: fizz. Gaussian noise ring-modulated by a 4 kHz sine
	// approximates a narrow high band.
	for i := 0; i < n; i++ {
		fizz := rng.NormFloat64() * constants.NukageFizzSigma
		fizz *= math.Sin(2*math.Pi*constants.NukageFizzFreq*float64(i)/rate) * constants.NukageFizzGain
		buf.samples[i] += fizz
	}

	buf.CrossfadeLoop(constants.NukageLoopFade)
	buf.Normalize(constants.NukagePeak)
	return buf
}

// ComputerHum synthesizes the terminal room ambience: a 60 Hz mains
// fundamental with two harmonics under a slow warble, plus a Gaussian
// noise floor. The content is periodic well within the clip length, so
// no loop-seam crossfade is needed.
func ComputerHum() *Buffer {
	rng := rand.New(rand.NewSource(constants.HumSeed))
	buf := NewBuffer(constants.AudioSampleRate, constants.HumDuration)
	rate := float64(buf.Rate())

	for i := range buf.samples {
		t := float64(i) / rate
		s := math.Sin(2*math.Pi*constants.HumFundamental*t) * 0.5
		s += math.Sin(2*math.Pi*2*constants.HumFundamental*t) * 0.25
		s += math.Sin(2*math.Pi*3*constants.HumFundamental*t) * 0.12
		warble := 1.0 + constants.HumWarbleDepth*math.Sin(2*math.Pi*constants.HumWarbleFreq*t)
		s *= warble
		s += rng.NormFloat64() * constants.HumNoiseSigma
		buf.samples[i] = s
	}

	buf.Normalize(constants.HumPeak)
	return buf
}
