package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facet-ui/facet/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐┌─┐┌─┐┌┬┐
  ╠╣ ├─┤│  ├┤  │
  ╚  ┴ ┴└─┘└─┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "facet",
		Short: "Custom elements for the wrapped presentation toolkit",
		Long: `Facet builds and serves a collection of custom host elements that
wrap a third-party presentation toolkit.

  • facet preview   browse the component gallery with live theme updates
  • facet render    print a component's generated markup
  • facet publish   write a static gallery snapshot to disk or S3
  • facet init      write a default facet.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		previewCmd(),
		renderCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the facet ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
