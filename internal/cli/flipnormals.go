package cli

import (
	"fmt"

	"github.com/mirgo-engine/mirgo-utils/internal/gltf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(flipnormalsCmd)
}

var flipnormalsCmd = &cobra.Command{
	Use:   "flipnormals <path>",
	Short: "Flip normals in a glTF model",
	Long: `Negate every vertex normal referenced by the model's mesh primitives,
patching the external binary buffer in place. The path may name a .gltf file
or a directory containing one.

Example:
  mirgo-utils flipnormals assets/models/duck.gltf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		asset, err := gltf.Load(input)
		if err != nil {
			return err
		}
		if asset.Path != input {
			fmt.Printf("Found GLTF file: %s\n", asset.Path)
		}

		flipped := asset.FlipNormals(cmd.ErrOrStderr())
		if flipped == 0 {
			fmt.Printf("No normals found to flip in %s\n", input)
			return nil
		}

		if err := asset.WriteBack(); err != nil {
			return err
		}

		fmt.Printf("Flipped %d normal vectors in %s\n", flipped, asset.BinPath)
		return nil
	},
}
