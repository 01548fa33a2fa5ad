// Package experiment runs Monte Carlo memory experiments on the rotated surface
// code and sweeps them over distances and error rates.
//
// Trials are spread over a fixed pool of workers. Each worker owns its own
// surfacecode.Code, seeded from the experiment seed and the worker index, so a
// run is reproducible for a given (seed, workers) pair.
package experiment
