package core

// Size describes the dimensions of a sampled grid or raster.
type Size struct {
	W int
	H int
}
