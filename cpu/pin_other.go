//go:build !linux

package cpu

// Pin is not supported outside linux.
func Pin(n int) (func(), error) {
	return nil, ErrPinUnsupported
}
