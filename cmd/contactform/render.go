package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
)

func renderCmd(configPath *string) *cobra.Command {
	var (
		renderer string
		output   string
		theme    string
		variant  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured form to HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(*configPath)
			if err != nil {
				return err
			}

			page, err := orchestrator.New(orchestrator.WithLoader(cliLoader())).Generate(cmd.Context(), orchestrator.Request{
				Source:       src,
				Renderer:     renderer,
				ThemeName:    theme,
				ThemeVariant: variant,
			})
			if err != nil {
				return err
			}

			return writeOutput(output, page)
		},
	}

	cmd.Flags().StringVar(&renderer, "renderer", "vanilla", "renderer to use")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme name")
	cmd.Flags().StringVar(&variant, "variant", "", "theme variant")

	return cmd
}

func checkCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a configuration document",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(*configPath)
			if err != nil {
				return err
			}

			doc, err := cliLoader().Load(cmd.Context(), src)
			if err != nil {
				return err
			}

			cfg, err := config.ParseAndValidate(doc)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d questions)\n", doc.Location(), len(cfg.Questions))
			return nil
		},
	}
}
