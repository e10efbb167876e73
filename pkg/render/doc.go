// Package render converts computed layouts into DOT and SVG artifacts.
//
// The layout engine owns all coordinates, so the DOT output pins every
// node with a fixed position and the Graphviz neato engine is used purely
// as a drawing backend: it routes edges and emits SVG without moving
// anything.
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// generation; no Graphviz installation is required.
package render
