package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/display"
)

var (
	enumColor  = color.New(color.Bold)
	groupColor = color.New(color.FgCyan)
)

func newListCmd(a *app) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "list [enum...]",
		Short: "Print the values of enumerations in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			es, err := a.enumerations(args)
			if err != nil {
				return err
			}

			for _, e := range es {
				printEnumeration(cmd.OutOrStdout(), e, group, cmd.Flags().Changed("group"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "only print values in this group")

	return cmd
}

// printEnumeration writes e in display order,
// starting a new section each time the group name changes.
func printEnumeration(w io.Writer, e display.Enumeration, group string, filter bool) {
	enumColor.Fprintln(w, e.EnumName())

	var current string
	for _, d := range e.Descriptors() {
		if filter && d.GroupName() != group {
			continue
		}

		if d.GroupName() != current {
			current = d.GroupName()
			if current != "" {
				groupColor.Fprintf(w, "  %s\n", current)
			}
		}

		fmt.Fprintf(w, "    %d\t%s\t%s", d.Underlying(), d.String(), d.Name())
		if d.ShortName() != d.Name() {
			fmt.Fprintf(w, " (%s)", d.ShortName())
		}
		if d.Description() != "" {
			fmt.Fprintf(w, " - %s", d.Description())
		}
		fmt.Fprintln(w)
	}
}
