package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"menuvroom/internal/domain"
	"menuvroom/internal/ui"
)

// newCommandSession is the session bootstrap for non-interactive commands:
// logs go to the command's stderr.
func newCommandSession(cmd *cobra.Command, opts *Options) (*session, error) {
	log.SetOutput(cmd.ErrOrStderr())
	return newSession(opts)
}

func newListCommand(opts *Options) *cobra.Command {
	var pager bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newCommandSession(cmd, opts)
			if err != nil {
				return err
			}
			catalog, err := s.catalog(cmd.Context(), false)
			if err != nil {
				return err
			}

			out := formatCatalog(catalog)
			if pager {
				return ui.ShowInPager(out)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&pager, "pager", "p", false, "show the catalog in a pager")
	return cmd
}

func newDirsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Print the directories that are searched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newCommandSession(cmd, opts)
			if err != nil {
				return err
			}
			dirs, err := s.directories()
			if err != nil {
				return err
			}
			for _, dir := range dirs {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), dir)
			}
			return nil
		},
	}
}

func newQueryCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "Print the ranked matches for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newCommandSession(cmd, opts)
			if err != nil {
				return err
			}
			catalog, err := s.catalog(cmd.Context(), false)
			if err != nil {
				return err
			}
			for _, text := range catalog.DisplayTexts(s.ranker.Rank(catalog, args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
}

func newRebuildCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Rescan the search path and rewrite the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newCommandSession(cmd, opts)
			if err != nil {
				return err
			}
			catalog, err := s.catalog(cmd.Context(), true)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", s.store.Path(), s.report.Summary(catalog.Len()))
			return nil
		},
	}
}

func newConfigCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newCommandSession(cmd, opts)
			if err != nil {
				return err
			}
			data, err := toml.Marshal(s.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", s.configSvc.Path(), data)
			return nil
		},
	}
}

func formatCatalog(catalog domain.Catalog) string {
	var b strings.Builder
	for _, e := range catalog.Entries() {
		if e.IsDesktopFile() {
			fmt.Fprintf(&b, "%s\t%s\n", e.DisplayText(), e.Command)
			continue
		}
		fmt.Fprintln(&b, e.Command)
	}
	return b.String()
}
