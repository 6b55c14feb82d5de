package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"propedit/internal/scene"
	"propedit/internal/tui"
	"propedit/internal/tui/util"
	"propedit/internal/tui/views/members"
)

func newShowCmd(a *app) *cobra.Command {
	var listMembers bool
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the editor form of a document without input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			b, err := scene.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			out := cmd.OutOrStdout()
			noColor := util.NoColor(a.cfg.UI.NoColor) || out != os.Stdout || !term.IsTerminal(int(os.Stdout.Fd()))

			if listMembers {
				ms, err := scene.NewRegistry().Members(b)
				if err != nil {
					return err
				}
				fmt.Fprint(out, members.List(ms, noColor))
				return nil
			}

			opts := a.options(b, filepath.Base(path))
			opts.NoColor = noColor
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				opts.Width = w
			}
			frame, err := tui.Render(b, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, frame)
			return nil
		},
	}
	cmd.Flags().BoolVar(&listMembers, "members", false, "list the editable members instead of the form")
	return cmd
}
