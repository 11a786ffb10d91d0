package platform

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Reader        Reader
	WindowManager WindowManager
	Launcher      Launcher
	Processes     ProcessInspector
}

// ProviderOptions is passed to the platform constructor.
type ProviderOptions struct {
	Logger *zap.Logger
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("sessionctl is not supported on %s/%s; an X11 session on linux is required", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/x11/init.go for the X11 registration.
var NewProviderFunc func(opts ProviderOptions) (*Provider, error)

// CheckDependenciesFunc is set by platform-specific packages via init().
// It verifies that the external tools the backend drives are installed.
var CheckDependenciesFunc func(ctx context.Context) error

// NewProvider returns a Provider for the current OS.
func NewProvider(opts ProviderOptions) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return NewProviderFunc(opts)
}

// CheckDependencies runs the platform's dependency check.
func CheckDependencies(ctx context.Context) error {
	if CheckDependenciesFunc == nil {
		return ErrUnsupported
	}
	return CheckDependenciesFunc(ctx)
}
