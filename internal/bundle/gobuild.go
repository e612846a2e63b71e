package bundle

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// buildTag selects the game entry point without the editor.
const buildTag = "game"

// runGoBuild compiles pkg into outputPath with the game build tag, streaming
// toolchain output to the given writers.
func runGoBuild(ctx context.Context, outputPath, pkg string, stdout, stderr io.Writer) error {
	goBin, err := exec.LookPath("go")
	if err != nil {
		return fmt.Errorf("go toolchain not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, goBin, "build", "-tags", buildTag, "-o", outputPath, pkg)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("go build failed with exit code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("running go build: %w", err)
	}

	fmt.Fprintf(stdout, "Built binary: %s\n", outputPath)
	return nil
}
