package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/estevanpithan/folio"
	"github.com/estevanpithan/folio/catalog"
	"github.com/estevanpithan/folio/data"
	"github.com/estevanpithan/folio/i18n"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and the bundled data",
	Long: `Loads the configuration, the article, project, experience and milestone
collections and the locale bundles, and reports any broken invariant
(duplicate slugs, unknown categories, bad dates) or untranslated keys.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := folio.LoadConfig(configPath, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "config: ok (%s)\n", cfg.URL)

	c, err := catalog.LoadDefault()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	fmt.Fprintf(out, "catalog: %d articles, %d projects, %d experience entries, %d milestones\n",
		len(c.Articles()), len(c.AllProjects()), len(c.Experience()), len(c.Milestones()))

	t, err := i18n.Load(data.FS, cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("locales: %w", err)
	}
	missing := t.MissingKeys()
	for _, b := range t.Bundles() {
		fmt.Fprintf(out, "locale %s (%s): %d keys\n", b.Key, b.Tag, len(b.Translation))
		if keys := missing[b.Key]; len(keys) > 0 {
			logger.Warn("untranslated keys", zap.String("locale", b.Key), zap.Int("count", len(keys)))
			fmt.Fprintf(out, "  missing: %s\n", strings.Join(keys, ", "))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("locales: %d incomplete bundle(s)", len(missing))
	}
	return nil
}
