package platform

import (
	"context"
	"errors"
	"testing"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider(ProviderOptions{})
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_DefaultsLogger(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	NewProviderFunc = func(opts ProviderOptions) (*Provider, error) {
		if opts.Logger == nil {
			t.Error("logger should default to a no-op logger")
		}
		return &Provider{}, nil
	}
	if _, err := NewProvider(ProviderOptions{}); err != nil {
		t.Fatal(err)
	}
}

func TestCheckDependencies(t *testing.T) {
	orig := CheckDependenciesFunc
	defer func() { CheckDependenciesFunc = orig }()

	CheckDependenciesFunc = nil
	if err := CheckDependencies(context.Background()); err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}

	missing := errors.New("missing wmctrl")
	CheckDependenciesFunc = func(context.Context) error { return missing }
	if err := CheckDependencies(context.Background()); err != missing {
		t.Errorf("expected registered check error, got %v", err)
	}
}
