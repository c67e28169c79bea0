// Package metrics is the aggregation and anomaly-detection engine behind the
// campaign dashboard. Every function is a pure reduction over its input: no
// I/O, no caching and no shared state, so calls are safe from any number of
// goroutines.
package metrics
