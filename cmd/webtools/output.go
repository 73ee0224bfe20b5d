package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/wordslab-org/webtools/toolkit"
)

var (
	// Color scheme for formatted tool output
	headerStyle = color.New(color.FgCyan, color.Bold)
	titleStyle  = color.New(color.FgGreen, color.Bold)
	urlStyle    = color.New(color.FgBlue, color.Underline)
	scoreStyle  = color.New(color.FgYellow)
	errorStyle  = color.New(color.FgRed, color.Bold)
	mutedStyle  = color.New(color.FgHiBlack)
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func printJSON(text string) {
	fmt.Println(text)
}

func printHeader(text string) {
	headerStyle.Println(text)
	mutedStyle.Println(strings.Repeat("─", min(displayWidth(text), 80)))
}

// displayWidth calculates the display width of text, accounting for wide
// characters.
func displayWidth(text string) int {
	return runewidth.StringWidth(text)
}

func truncate(text string, width int) string {
	text = strings.ReplaceAll(text, "\n", " ")
	return runewidth.Truncate(text, width, "...")
}

func printSearchResult(result *toolkit.WebSearchResult) {
	printHeader(fmt.Sprintf("Search results for %q (%d results, %.2fs)",
		result.Query, len(result.Results), result.ResponseTime))
	if result.Answer != "" {
		fmt.Println()
		titleStyle.Println("Answer")
		fmt.Println(result.Answer)
	}
	for i, item := range result.Results {
		fmt.Println()
		titleStyle.Printf("%d. %s", i+1, item.Title)
		if item.Score > 0 {
			scoreStyle.Printf("  (score: %.2f)", item.Score)
		}
		fmt.Println()
		urlStyle.Println("   " + item.URL)
		if item.Content != "" {
			fmt.Println("   " + truncate(item.Content, 200))
		}
		if item.PublishedDate != "" {
			mutedStyle.Println("   " + item.PublishedDate)
		}
	}
	if len(result.Images) > 0 {
		fmt.Println()
		titleStyle.Println("Images")
		for _, image := range result.Images {
			urlStyle.Println("   " + image.URL)
		}
	}
}

func printCrawlResult(result *toolkit.WebCrawlResult) {
	printHeader(fmt.Sprintf("Crawled %s (%d pages, %.2fs)",
		result.BaseURL, len(result.Results), result.ResponseTime))
	for i, page := range result.Results {
		fmt.Println()
		titleStyle.Printf("%d. ", i+1)
		urlStyle.Println(page.URL)
		if page.RawContent != "" {
			fmt.Println("   " + truncate(page.RawContent, 200))
		}
	}
}

func printExtractResult(result *toolkit.WebExtractResult) {
	printHeader(fmt.Sprintf("Extracted %d pages (%d failed, %.2fs)",
		len(result.Results), len(result.FailedResults), result.ResponseTime))
	for i, page := range result.Results {
		fmt.Println()
		titleStyle.Printf("%d. ", i+1)
		urlStyle.Println(page.URL)
		if page.RawContent != "" {
			fmt.Println("   " + truncate(page.RawContent, 200))
		}
	}
	for _, failed := range result.FailedResults {
		fmt.Println()
		errorStyle.Print("✗ ")
		urlStyle.Println(failed.URL)
		if failed.Error != "" {
			mutedStyle.Println("   " + failed.Error)
		}
	}
}

func printMapResult(result *toolkit.WebMapResult) {
	printHeader(fmt.Sprintf("Mapped %s (%d urls, %.2fs)",
		result.BaseURL, len(result.Results), result.ResponseTime))
	for _, url := range result.Results {
		urlStyle.Println("  " + url)
	}
}
