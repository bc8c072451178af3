package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
	"github.com/goliatone/go-contactform/pkg/response"
)

func fillCmd(configPath *string) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the form interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(*configPath)
			if err != nil {
				return err
			}

			orch := orchestrator.New(orchestrator.WithLoader(cliLoader()))
			form, err := orch.BuildModel(cmd.Context(), orchestrator.Request{Source: src})
			if err != nil {
				return err
			}

			renderer, err := tui.New(tui.WithOutputFormat(tui.OutputFormat(format)))
			if err != nil {
				return err
			}

			artifact, err := renderer.Render(cmd.Context(), form, render.RenderOptions{})
			if err != nil {
				return err
			}

			if output == "" && format == string(tui.OutputFormatSnapshotHTML) {
				output = response.ArtifactFilename
			}
			return writeOutput(output, artifact)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(tui.OutputFormatSnapshotHTML), "output format (html, form, pretty)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to form-response.html for html)")

	return cmd
}

func respondCmd(configPath *string) *cobra.Command {
	var (
		answers []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "respond",
		Short: "Build a response document from name=value answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(*configPath)
			if err != nil {
				return err
			}

			orch := orchestrator.New(orchestrator.WithLoader(cliLoader()))
			form, err := orch.BuildModel(cmd.Context(), orchestrator.Request{Source: src})
			if err != nil {
				return err
			}

			serializer := response.NewSerializer()
			resp, result, err := serializer.SerializePairs(form, answers)
			if err != nil {
				return err
			}
			if !result.Valid {
				var missing []string
				for name := range result.Fields {
					missing = append(missing, name)
				}
				return fmt.Errorf("required answers missing: %s", strings.Join(missing, ", "))
			}

			if output == "" {
				output = response.ArtifactFilename
			}
			return writeOutput(output, response.RenderSnapshot(resp))
		},
	}

	cmd.Flags().StringArrayVar(&answers, "set", nil, "answer as name=value (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to form-response.html)")

	return cmd
}
