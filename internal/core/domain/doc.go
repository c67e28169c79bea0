// Package domain holds the value types shared by the parsers, the metrics
// engine, storage and the HTTP layer. It has no dependencies on other
// internal packages.
package domain
