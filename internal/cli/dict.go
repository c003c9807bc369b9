package cli

import (
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles-go/internal/api/response"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Dictionary commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the loaded dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Dictionary
			if err := client.Get(cmd.Context(), "/api/v1/dictionary", &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <word>",
		Short: "Check whether a word is in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.ToUpper(args[0])
			var result response.WordCheck
			if err := client.Get(cmd.Context(), "/api/v1/dictionary/words/"+url.PathEscape(word), &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
