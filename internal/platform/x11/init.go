//go:build linux

package x11

import "github.com/sessionctl/sessionctl/internal/platform"

func init() {
	platform.NewProviderFunc = func(opts platform.ProviderOptions) (*platform.Provider, error) {
		backend, err := New(opts.Logger)
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Reader:        backend,
			WindowManager: backend,
			Launcher:      backend,
			Processes:     backend,
		}, nil
	}
	platform.CheckDependenciesFunc = CheckDependencies
}
