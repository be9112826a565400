// internal/cli/scrape.go
package cli

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/arc-language/teaconf/pkg/core"
	"github.com/arc-language/teaconf/pkg/ninja"
)

var scrapeTarget string

var scrapeCmd = &cobra.Command{
	Use:   "scrape [descriptor]",
	Short: "Show what would be scraped from a ninja descriptor",
	Long: `Scrape a ninja descriptor (default <compiledir>/obj/d8.ninja) and print the
params it yields, without resolving dependencies or running make.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeTarget, "target", "", "link target (default from config, ./d8)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	params, err := core.Bootstrap(config)
	if err != nil {
		return err
	}

	target := config.Target
	if scrapeTarget != "" {
		target = scrapeTarget
	}

	descriptor := ninja.DescriptorPath(params.Value(core.KeyV8CompileDir), target)
	if len(args) == 1 {
		descriptor = args[0]
	}

	before := params.Len()

	scraper := ninja.NewScraper(target)
	scraper.Logger = logger
	lt, err := scraper.ScrapeFile(descriptor, params)
	if err != nil {
		return fmt.Errorf("scraping %s: %w", descriptor, err)
	}

	keys := params.Keys()
	for _, k := range keys[before:] {
		fmt.Printf("%s = %s\n", color.Cyan.Sprint(k), params.Value(k))
	}

	color.Green.Printf("\n✓ %s: %d objects, %d archives, %d library paths\n",
		lt.Name, len(lt.Objects), len(lt.Archives), len(lt.LibPaths))
	return nil
}
