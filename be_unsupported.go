//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// The oto backend reinterprets a []float32 sample buffer as []byte via
// unsafe.Pointer, which assumes little-endian byte order.
var _ = "IntuitionEngine requires a little-endian architecture" + 1
