// Package server provides the HTTP surface: the analyze endpoint, the static
// analysis UI page, health probes, and the metrics endpoint. It is a thin
// wrapper over the analysis service; all pipeline logic lives elsewhere.
package server
