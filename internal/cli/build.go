package cli

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/mirgo-engine/mirgo-utils/internal/branding"
	"github.com/mirgo-engine/mirgo-utils/internal/bundle"
	"github.com/mirgo-engine/mirgo-utils/internal/config"
	"github.com/spf13/cobra"
)

var buildBundleVersion string

func init() {
	buildCmd.Flags().StringVar(&buildBundleVersion, "bundle-version", "1.0.0", "Semver written into the bundle metadata")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [name]",
	Short: "Build the game as a distributable bundle",
	Long: `Compile the game without the editor and package it for the current
platform: a .app bundle on macOS, a binary plus assets directory elsewhere.

Example:
  mirgo-utils build mygame --bundle-version 1.2.0`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		name := "game"
		if len(args) == 1 {
			name = args[0]
		}

		if _, err := semver.NewVersion(buildBundleVersion); err != nil {
			return fmt.Errorf("invalid --bundle-version %q: %w", buildBundleVersion, err)
		}

		fmt.Println("Building game (without editor)...")

		out, err := bundle.Build(cmd.Context(), bundle.Options{
			Name:          name,
			BuildDir:      config.Get(config.KeyBuildDir),
			AssetsDir:     config.Get(config.KeyAssetsDir),
			GamePackage:   config.Get(config.KeyGamePackage),
			BundleID:      branding.BundleID() + "." + name,
			BundleVersion: buildBundleVersion,
			Stdout:        cmd.OutOrStdout(),
			Stderr:        cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}

		fmt.Println("\nBuild complete!")
		fmt.Printf("Created: %s\n", out)
		if runtime.GOOS == "darwin" {
			fmt.Println("Double-click to run or drag to Applications!")
		} else {
			fmt.Printf("Run with: cd %s && ./%s\n", config.Get(config.KeyBuildDir), name)
		}
		return nil
	},
}
