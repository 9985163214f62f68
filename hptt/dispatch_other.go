//go:build !amd64 && !arm64

package hptt

func init() {
	// Other architectures run the plain Go kernels.
	setScalarMode()
}
