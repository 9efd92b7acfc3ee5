package main

import (
	"fmt"
	"phishlens/internal/config"
	"phishlens/internal/keywords"
	"strings"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

func keywordsCommand(cfg *config.Config) *cobra.Command {
	var (
		bodyFile string
		subject  string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Reports the suspicious phrases found in an email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scorer := keywords.New(cfg.Keywords.Phrases)
			if list {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(scorer.Phrases(), "\n"))

				return err //nolint: wrapcheck
			}

			body, err := readInput(cmd, bodyFile)
			if err != nil {
				return err
			}
			matches := scorer.Matches(body, subject)

			var e jx.Encoder
			e.ObjStart()
			e.FieldStart("has_phishy_keywords")
			e.Bool(len(matches) > 0)
			e.FieldStart("matches")
			e.ArrStart()
			for _, m := range matches {
				e.Str(m)
			}
			e.ArrEnd()
			e.ObjEnd()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.String())

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringVarP(&bodyFile, "body-file", "b", "-", "File holding the email body, - for stdin")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Email subject")
	cmd.Flags().BoolVar(&list, "list", false, "Print the configured phrases and exit")

	return cmd
}
