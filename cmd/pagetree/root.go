package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jpl-au/pagetree"
	"github.com/jpl-au/pagetree/internal/logging"
	"github.com/jpl-au/pagetree/store"
)

// app carries the global flags and the pieces every command shares.
type app struct {
	file      string
	compress  bool
	algorithm int
	verbose   bool

	log *slog.Logger
	ids pagetree.IDSource // nil means the engine default
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "pagetree",
		Short:         "Inspect and edit design documents",
		Long:          `pagetree works on a single document file holding a tree of pages, folders and shapes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.file, "file", "f", "document.pagetree", "Document file")
	root.PersistentFlags().BoolVar(&a.compress, "compress", false, "Compress the document body on save")
	root.PersistentFlags().IntVar(&a.algorithm, "checksum", store.AlgXXHash3, "Checksum algorithm (1=xxHash3, 2=FNV1a, 3=Blake2b)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every engine operation to stderr")

	root.AddCommand(
		newInitCmd(a),
		newTreeCmd(a),
		newFindCmd(a),
		newAddCmd(a),
		newRmCmd(a),
		newCloneCmd(a),
		newHomeCmd(a),
		newMvCmd(a),
		newRenameCmd(a),
		newExportCmd(a),
		newVerifyCmd(a),
		newStatCmd(a),
	)
	return root
}

// config returns the engine configuration for loaded documents.
func (a *app) config() pagetree.Config {
	log := a.log
	if log == nil {
		log = logging.NewNop()
	}
	return pagetree.Config{IDs: a.ids, Logger: log}
}

// open opens the store holding the document file.
func (a *app) open() (*store.Store, error) {
	dir, name := filepath.Split(a.file)
	if dir == "" {
		dir = "."
	}
	return store.Open(dir, name, store.Config{
		Algorithm:  a.algorithm,
		Compress:   a.compress,
		SyncWrites: true,
	})
}

// view loads the document for a read-only command.
func (a *app) view(fn func(*pagetree.Document) error) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	defer s.Close()

	doc, err := s.Load(a.config())
	if err != nil {
		return fmt.Errorf("%s: %w", a.file, err)
	}
	return fn(doc)
}

// edit loads the document, applies fn and saves the result. Nothing is
// saved when fn fails.
func (a *app) edit(fn func(*pagetree.Document) error) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	defer s.Close()

	doc, err := s.Load(a.config())
	if err != nil {
		return fmt.Errorf("%s: %w", a.file, err)
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.Save(doc); err != nil {
		return fmt.Errorf("%s: %w", a.file, err)
	}
	return nil
}
