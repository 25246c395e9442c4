package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencapture/opencapture/pkg/controls"
)

func newControlsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controls",
		Short: "List the controls a capture script can set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := controls.DefaultCatalog()

			if jsonOutput {
				type entry struct {
					ID   uint32 `json:"id"`
					Name string `json:"name"`
					Type string `json:"type"`
				}
				entries := make([]entry, 0, len(catalog.Controls()))
				for _, id := range catalog.Controls() {
					entries = append(entries, entry{
						ID:   id.Num(),
						Name: id.Name(),
						Type: id.Type().String(),
					})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			for _, id := range catalog.Controls() {
				fmt.Printf("%4d  %-20s %s\n", id.Num(), id.Name(), id.Type())
			}
			return nil
		},
	}

	return cmd
}
