//go:build !amd64 && !arm64

package hwy

func init() {
	// wasm SIMD128 and the RISC-V vector extension would both be 16-byte
	// targets; until they are detected we stay on the scalar configuration.
	setScalarMode()
}
