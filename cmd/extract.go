package main

import (
	"fmt"
	"phishlens/internal/config"
	"phishlens/pkg/domain"

	"github.com/spf13/cobra"
)

func extractCommand(cfg *config.Config) *cobra.Command {
	var (
		bodyFile string
		email    domain.Email
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Prints the classifier features of a single email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("registrable") {
				cfg.Extractor.Registrable, _ = cmd.Flags().GetBool("registrable")
			}

			a, err := newAnalyzer(cfg, nil)
			if err != nil {
				return err
			}

			email.Body, err = readInput(cmd, bodyFile)
			if err != nil {
				return err
			}

			data, err := a.Analyze(cmd.Context(), email).MarshalJSON()
			if err != nil {
				return fmt.Errorf("could not encode features: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringVarP(&bodyFile, "body-file", "b", "-", "File holding the email body, - for stdin")
	cmd.Flags().StringVar(&email.ID, "id", "", "Identifier copied to the output")
	cmd.Flags().StringVarP(&email.Subject, "subject", "s", "", "Email subject")
	cmd.Flags().StringVar(&email.From, "from", "", "Sender as displayed")
	cmd.Flags().StringVar(&email.To, "to", "", "Recipient as displayed")
	cmd.Flags().StringVar(&email.Date, "date", "", "Date as displayed")
	cmd.Flags().Bool("registrable", false, "Also print registrable domains (eTLD+1)")

	return cmd
}
