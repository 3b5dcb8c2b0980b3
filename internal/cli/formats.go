package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/recordgen/export"
)

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered export formats",
		Long:  `List the registered export formats. The configured default is marked with "*".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := export.Builtin()
			def := a.cfg.DefaultFormat
			if def == "" {
				def = DefaultFormat
			}
			for _, name := range reg.Names() {
				mark := " "
				if f, err := reg.Lookup(def); err == nil && f.Name() == name {
					mark = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
