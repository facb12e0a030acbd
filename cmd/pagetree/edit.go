package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pagetree"
	"github.com/jpl-au/pagetree/store"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a document with a single home page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			defer s.Close()

			if s.Exists() && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.file)
			}
			doc := pagetree.New(a.config())
			if err := s.Save(doc); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc.Home().ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing document")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	var parent, name string

	cmd := &cobra.Command{
		Use:       "add page|folder|shape",
		Short:     "Add a page, folder or shape",
		Long:      `Adds a node with default geometry as the last child of --parent (the top level by default) and prints its id.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"page", "folder", "shape"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(doc *pagetree.Document) error {
				var n *pagetree.Node
				var err error
				switch pagetree.Kind(args[0]) {
				case pagetree.KindPage:
					n, err = doc.AddPage(parent)
				case pagetree.KindFolder:
					n, err = doc.AddFolder(parent)
				case pagetree.KindShape:
					n, err = doc.AddShape(parent)
				default:
					return fmt.Errorf("unknown kind %q", args[0])
				}
				if err != nil {
					return err
				}
				if name != "" {
					if err := doc.Rename(n.ID, name); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), n.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "Parent id (top level when empty)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the new node")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a node and its subtree",
		Long:  `Deletes a node and everything below it. Absent ids and the home page are left alone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(doc *pagetree.Document) error {
				if doc.Delete(args[0]) {
					fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "kept %s (absent or protected)\n", args[0])
				}
				return nil
			})
		},
	}
}

func newCloneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <id>",
		Short: "Copy a node and its subtree with new ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(doc *pagetree.Document) error {
				c, err := doc.Clone(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.ID)
				return nil
			})
		},
	}
}

func newHomeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home <id>",
		Short: "Make a page the home page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(doc *pagetree.Document) error {
				return doc.SetHome(args[0])
			})
		},
	}
}

func newMvCmd(a *app) *cobra.Command {
	var parent string
	var at int

	cmd := &cobra.Command{
		Use:   "mv <id>",
		Short: "Move a node under another parent or to another position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(doc *pagetree.Document) error {
				return doc.Move(args[0], parent, at)
			})
		},
	}
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "New parent id (top level when empty)")
	cmd.Flags().IntVar(&at, "at", -1, "Position among the new siblings (-1 appends)")
	return cmd
}

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(func(doc *pagetree.Document) error {
				return doc.Rename(args[0], args[1])
			})
		},
	}
}

// describe turns engine errors into short user-facing text.
func describe(err error) string {
	switch {
	case errors.Is(err, pagetree.ErrNotFound):
		return "no such node"
	case errors.Is(err, pagetree.ErrInvalidTarget):
		return "not allowed for this node"
	case errors.Is(err, pagetree.ErrProtected):
		return "home page is protected"
	case errors.Is(err, store.ErrNotFound):
		return "document file missing (run init)"
	case errors.Is(err, store.ErrChecksum), errors.Is(err, pagetree.ErrCorruptTree):
		return "document file is damaged"
	}
	return ""
}
