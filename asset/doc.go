// Package asset loads raster images into color grids and carries the built-in scene definition.
package asset
