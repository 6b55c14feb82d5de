package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"propedit/internal/document"
	"propedit/internal/scene"
	"propedit/internal/tui"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a body document interactively",
		Long: `Open the document in the terminal editor. Press s to save back to the
same file and ? for the key help.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			b, err := scene.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			log := a.log.With("document", path)
			log.Info("editing document")
			opts := a.options(b, filepath.Base(path))
			opts.Logger = log.Logger
			opts.Save = func() error { return scene.Save(path, b) }
			return tui.Run(b, opts)
		},
	}
}

// options builds the editor options shared by edit and show.
func (a *app) options(b *scene.Body, title string) tui.Options {
	return tui.Options{
		Title:     title,
		Registry:  scene.NewRegistry(),
		Header:    scene.Header(b),
		Footer:    scene.Footer(b),
		Snapshot:  func() (string, error) { return document.Snapshot(b) },
		RowHeight: a.cfg.UI.RowHeight,
		CellWidth: a.cfg.UI.CellWidth,
		Width:     a.cfg.UI.Width,
		Height:    a.cfg.UI.Height,
		NoColor:   a.cfg.UI.NoColor,
		Logger:    a.log.Logger,
	}
}
