// Package blend provides an N-channel attribute for smoothing groups of
// weights together, such as morph target weights, mixer gains or color
// channels.
//
// [Weights] satisfies smooth.Lerpable, so it works with the linear rule and
// with chains like any vector type. Arithmetic is dispatched to the SIMD
// kernels of algo-vecmath.
package blend
