package cjson

const (
	// Configuration defaults
	DefaultEncodeMaxDepth        = 20
	DefaultDecodeMaxDepth        = 20
	DefaultEncodeNumberPrecision = 14
	DefaultEncodeSparseRatio     = 2
	DefaultEncodeSparseSafe      = 10

	// Configuration domains
	MaxDepthLimit      = 1<<31 - 1
	MaxNumberPrecision = 14

	// Buffer and pool sizes
	defaultBufferSize = 2048
	minPoolBufferSize = 256
	maxPoolBufferSize = 64 * 1024
)
