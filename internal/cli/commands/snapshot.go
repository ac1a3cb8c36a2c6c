package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syssam/coder/compiler/load"
)

// DefaultSnapshot is the snapshot file written when --out is not set.
const DefaultSnapshot = "model.msgpack"

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write the model as a normalized document",
		Long: `Load the model and write it back in a single document. The format is
chosen from the extension of the output file: .msgpack, .json or .yaml.
A snapshot can be passed to --model like any other model file.`,
		Example: `  # Write a MessagePack snapshot
  coder snapshot --model model.yaml --out model.msgpack

  # Convert a model to JSON
  coder snapshot --out model.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := NewCommandContext(cmd)
			format, err := load.FormatOf(out)
			if err != nil {
				return err
			}
			m, err := c.LoadModel()
			if err != nil {
				return err
			}
			data, err := load.Marshal(m, format)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create snapshot directory: %w", err)
				}
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			c.Logger.Debug("wrote snapshot", "path", out, "format", format, "bytes", len(data))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d classes to %s\n", m.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", DefaultSnapshot, "Snapshot file")
	return cmd
}
