package bundle

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/mirgo-engine/mirgo-utils/internal/platform"
)

// Options control a game build.
type Options struct {
	Name          string // output name, e.g., "game"
	BuildDir      string // directory receiving the build output
	AssetsDir     string // source assets directory; missing dir is a no-op
	GamePackage   string // package passed to go build, e.g., "./cmd/test3d"
	BundleID      string // full macOS bundle identifier, e.g., "com.mirgo.game"
	BundleVersion string // CFBundleVersion value
	GOOS          string // target layout; defaults to runtime.GOOS

	// Stdout and Stderr can be set for testing; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) setDefaults() {
	if o.GOOS == "" {
		o.GOOS = runtime.GOOS
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Build compiles the game and packages it for the target platform.
// It returns the path of the produced bundle or binary directory entry.
func Build(ctx context.Context, opts Options) (string, error) {
	opts.setDefaults()

	if err := os.MkdirAll(opts.BuildDir, 0755); err != nil {
		return "", fmt.Errorf("creating build directory %s: %w", opts.BuildDir, err)
	}

	if opts.GOOS == "darwin" {
		return buildApp(ctx, opts)
	}
	return buildFlat(ctx, opts)
}

// buildApp assembles a macOS .app bundle:
// <name>.app/Contents/{MacOS/<name>, Resources/assets, Info.plist}.
func buildApp(ctx context.Context, opts Options) (string, error) {
	appPath := filepath.Join(opts.BuildDir, opts.Name+".app")
	contentsPath := filepath.Join(appPath, "Contents")
	macosPath := filepath.Join(contentsPath, "MacOS")
	resourcesPath := filepath.Join(contentsPath, "Resources")

	for _, dir := range []string{macosPath, resourcesPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating bundle directory %s: %w", dir, err)
		}
	}

	binaryPath := filepath.Join(macosPath, opts.Name)
	if err := runGoBuild(ctx, binaryPath, opts.GamePackage, opts.Stdout, opts.Stderr); err != nil {
		return "", err
	}
	if err := platform.Chmod(binaryPath, 0755); err != nil {
		return "", fmt.Errorf("marking binary executable: %w", err)
	}

	if err := copyAssets(opts.AssetsDir, filepath.Join(resourcesPath, "assets"), opts.Stdout); err != nil {
		return "", err
	}

	plistPath := filepath.Join(contentsPath, "Info.plist")
	if err := os.WriteFile(plistPath, []byte(infoPlist(opts.Name, opts.BundleID, opts.BundleVersion)), 0644); err != nil {
		return "", fmt.Errorf("writing Info.plist: %w", err)
	}

	return appPath, nil
}

// buildFlat produces the binary and an assets directory directly in BuildDir.
func buildFlat(ctx context.Context, opts Options) (string, error) {
	binaryPath := filepath.Join(opts.BuildDir, opts.Name)
	if err := runGoBuild(ctx, binaryPath, opts.GamePackage, opts.Stdout, opts.Stderr); err != nil {
		return "", err
	}
	if err := platform.Chmod(binaryPath, 0755); err != nil {
		return "", fmt.Errorf("marking binary executable: %w", err)
	}

	if err := copyAssets(opts.AssetsDir, filepath.Join(opts.BuildDir, "assets"), opts.Stdout); err != nil {
		return "", err
	}

	return binaryPath, nil
}
