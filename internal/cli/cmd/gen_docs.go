package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/tabmaster/internal/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat renders the command tree into dir.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir string) error {
			now := time.Now()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "TABMASTER",
				Section: "1",
				Source:  "tabmaster " + buildInfo.Version,
				Manual:  "tabmaster Manual",
				Date:    &now,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

var genDocsCmd = &cobra.Command{
	Use:         "gen-docs",
	Short:       "Generate man pages or markdown from the command tree",
	Annotations: map[string]string{annotationApp: appNone},
	Long: `Generate documentation for every tabmaster command.

Man pages go to $XDG_DATA_HOME/man/man1 by default so 'man tabmaster'
works right away (run 'mandb' if it does not). Markdown goes to ./docs.

Examples:
  tabmaster gen-docs
  tabmaster gen-docs --format markdown
  tabmaster gen-docs --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve %s directory: %w", genDocsFormat, err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No timestamp footer, so regenerated docs diff cleanly.
	root := cmd.Root()
	root.DisableAutoGenTag = true
	if err := format.generate(root, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.RenderSuccess(fmt.Sprintf("Generated %s docs in %s", genDocsFormat, dir)))
	listGenerated(out, dir, format.ext)
	return nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
