package cli

import (
	"fmt"

	"github.com/mirgo-engine/mirgo-utils/internal/config"
	"github.com/mirgo-engine/mirgo-utils/internal/scaffold"
	"github.com/spf13/cobra"
)

var newscriptOutputDir string

func init() {
	newscriptCmd.Flags().StringVar(&newscriptOutputDir, "output-dir", "", "Output directory (default: scripts_dir from config)")
	rootCmd.AddCommand(newscriptCmd)
}

var newscriptCmd = &cobra.Command{
	Use:   "newscript <Name>",
	Short: "Create a new Go script component",
	Long: `Scaffold a new script component registered with the engine's script registry.

The name must be an exported Go identifier; the file name is derived from it.

Example:
  mirgo-utils newscript EnemyChaser`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		data, err := scaffold.NewScriptData(args[0], config.Get(config.KeyEngineImport))
		if err != nil {
			return err
		}

		outDir := newscriptOutputDir
		if outDir == "" {
			outDir = config.Get(config.KeyScriptsDir)
		}

		path, err := scaffold.Generate(data, outDir)
		if err != nil {
			return err
		}

		fmt.Printf("Created %s\n", path)
		fmt.Printf("Script %q registered. Add it to a scene object:\n\n", data.Name)
		fmt.Println("  {")
		fmt.Println(`    "type": "Script",`)
		fmt.Printf("    \"name\": %q,\n", data.Name)
		fmt.Println(`    "props": { "speed": 1.0 }`)
		fmt.Println("  }")
		return nil
	},
}
