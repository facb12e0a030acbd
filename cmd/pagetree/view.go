package main

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jpl-au/pagetree"
	"github.com/jpl-au/pagetree/store"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the document outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(func(doc *pagetree.Document) error {
				out := cmd.OutOrStdout()
				for depth, n := range doc.Outline() {
					fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), label(n))
				}
				return nil
			})
		},
	}
}

// label is the one-line description of a node used by tree and find.
func label(n *pagetree.Node) string {
	s := fmt.Sprintf("%s [%s] %s", n.Name, n.Kind, n.ID)
	if n.IsHome {
		s += " (home)"
	}
	return s
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "List nodes whose name contains query, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(func(doc *pagetree.Document) error {
				for _, n := range doc.FindByName(args[0]) {
					fmt.Fprintln(cmd.OutOrStdout(), label(n))
				}
				return nil
			})
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the document snapshot as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(func(doc *pagetree.Document) error {
				var data []byte
				var err error
				switch format {
				case "json":
					data, err = json.MarshalIndent(doc.Snapshot(), "", "  ")
					data = append(data, '\n')
				case "yaml":
					data, err = yaml.Marshal(doc.Snapshot())
				default:
					return fmt.Errorf("unknown format %q (json or yaml)", format)
				}
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the document file and tree invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(func(doc *pagetree.Document) error {
				if err := pagetree.Verify(doc.Snapshot()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes, home %s\n", doc.Len(), doc.Home().ID)
				return nil
			})
		},
	}
}

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Print the document file header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			defer s.Close()

			hdr, err := s.Stat()
			if err != nil {
				return fmt.Errorf("%s: %w", a.file, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version:    %d\n", hdr.Version)
			fmt.Fprintf(out, "nodes:      %d\n", hdr.Nodes)
			fmt.Fprintf(out, "checksum:   %s (%s)\n", hdr.Sum, store.AlgorithmName(hdr.Algorithm))
			fmt.Fprintf(out, "compressed: %t\n", hdr.Compressed == 1)
			fmt.Fprintf(out, "written:    %s\n", time.UnixMilli(hdr.Timestamp).UTC().Format(time.RFC3339))
			return nil
		},
	}
}
