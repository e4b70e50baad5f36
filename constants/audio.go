package constants

// Audio Output Format
const (
	// AudioSampleRate is the output rate for all ambient loops
	AudioSampleRate = 22050

	// AudioChannels is mono throughout
	AudioChannels = 1
)

// Nukage Sizzle Loop
const (
	// NukageDuration is the pre-trim clip length in seconds
	NukageDuration = 3.0

	// NukageSeed governs every random draw in the sizzle routine
	NukageSeed = 1234

	// NukageLoopFade is the loop-seam crossfade window in seconds
	NukageLoopFade = 0.05

	// NukagePeak is the normalization target
	NukagePeak = 0.7

	// NukageBrownGain scales the brown noise layer
	NukageBrownGain = 0.4

	// NukageBrownSigma is the per-sample brown noise increment deviation
	NukageBrownSigma = 0.02

	// NukageBrownDecay bounds the brown noise walk (a pure walk drifts)
	NukageBrownDecay = 0.998

	// NukageFizzSigma is the fizz noise deviation
	NukageFizzSigma = 0.03

	// NukageFizzFreq is the fizz modulation frequency in Hz
	NukageFizzFreq = 4000.0

	// NukageFizzGain scales the modulated fizz layer
	NukageFizzGain = 0.5
)

// Bubble Pop Events
const (
	// PopIntervalMin/Max bound the gap between pops in seconds
	PopIntervalMin = 0.08
	PopIntervalMax = 0.3

	// PopDurationMin/Max bound a single pop burst in seconds
	PopDurationMin = 0.01
	PopDurationMax = 0.04

	// PopFreqMin/Max bound the burst frequency in Hz
	PopFreqMin = 300.0
	PopFreqMax = 800.0

	// PopVolumeMin/Max bound the burst amplitude
	PopVolumeMin = 0.05
	PopVolumeMax = 0.15
)

// Computer Hum Loop
const (
	// HumDuration is the clip length in seconds
	HumDuration = 2.0

	// HumSeed governs the noise floor draws
	HumSeed = 5678

	// HumPeak is the normalization target
	HumPeak = 0.6

	// HumFundamental is the mains frequency in Hz; harmonics sit at 2x
	// (amp 0.25) and 3x (amp 0.12) of the 0.5 fundamental
	HumFundamental = 60.0

	// HumWarbleFreq is the slow amplitude modulation rate in Hz
	HumWarbleFreq = 0.5

	// HumWarbleDepth is the amplitude modulation depth
	HumWarbleDepth = 0.08

	// HumNoiseSigma is the additive Gaussian noise floor deviation
	HumNoiseSigma = 0.005
)
