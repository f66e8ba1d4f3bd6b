// Package config loads harness scenarios from YAML.
//
// A scenario names the algorithm, the pacing (step delay, start paused),
// breakpoints by step, weight or edge, and the graph, either generated by
// one of the builder topologies or listed explicitly:
//
//	algorithm: prim
//	stepDelayMillis: 250
//	breakpoints:
//	  weights: [5]
//	graph:
//	  generator: grid
//	  rows: 3
//	  cols: 4
//	  seed: 7
//	  minWeight: 1
//	  maxWeight: 20
//
// Scenarios are read only; nothing in this package writes graphs back.
package config
