package main

import (
	"fmt"
	"phishlens/internal/extractor"

	"github.com/spf13/cobra"
)

func censorCommand() *cobra.Command {
	var bodyFile string

	cmd := &cobra.Command{
		Use:   "censor",
		Short: "Replaces http(s) links in a text with " + extractor.CensoredLink,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := readInput(cmd, bodyFile)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), extractor.CensorLinks(text))

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringVarP(&bodyFile, "body-file", "b", "-", "File holding the text, - for stdin")

	return cmd
}
