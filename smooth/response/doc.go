// Package response describes how a retention value behaves over time and
// frequency.
//
// Driven once per frame, a smoothed component is a one-pole low-pass
// filter:
//
//	y[n] = a*y[n-1] + (1-a)*x[n],  a = retention^(1/fps)
//
// [Analyze] reports closed-form properties (time constant, half-life,
// settle time, cutoff frequency). [StepResponse] and [ImpulseResponse]
// simulate a real component frame by frame, [FrequencyResponse] takes the
// FFT of the impulse response, and [SpringStep] produces a damped spring
// curve for comparison.
package response
