//go:build !cgo

package hal

import "errors"

// WindowConfig describes the desktop window.
type WindowConfig struct {
	HostConfig
	Scale int
	Title string
	TPS   int
}

func RunWindow(_ WindowConfig, _ func(HAL) (func() error, error)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
