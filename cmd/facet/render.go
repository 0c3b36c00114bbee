package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facet-ui/facet/internal/config"
	"github.com/facet-ui/facet/internal/errors"
	"github.com/facet-ui/facet/pkg/preview"
)

func renderCmd() *cobra.Command {
	var (
		output string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render [component]",
		Short: "Print a component's generated markup",
		Long: `Render a component to HTML and print it.

Without an argument the full gallery index page is rendered.

Examples:
  facet render dialog
  facet render --pretty tabs
  facet render -o gallery.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runRender(name, output, pretty)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the markup")

	return cmd
}

func runRender(name, output string, pretty bool) error {
	cfg, err := config.Find(".")
	if err != nil {
		return err
	}

	env, themes, err := buildEnv(cfg)
	if err != nil {
		return err
	}
	defer themes.Close()

	gallery := preview.NewGallery(env, pretty || cfg.Preview.Pretty)

	var markup string
	if name == "" {
		markup, err = gallery.Index()
	} else {
		markup, err = gallery.Component(name)
	}
	if err != nil {
		return errors.New("F300").
			WithDetail(err.Error()).
			WithSuggestion("Known components: " + strings.Join(gallery.Names(), ", "))
	}

	if output == "" {
		fmt.Println(markup)
		return nil
	}
	if err := os.WriteFile(output, []byte(markup+"\n"), 0644); err != nil {
		return errors.FromError(err, "F301")
	}
	success("wrote %s", output)
	return nil
}
