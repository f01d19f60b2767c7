package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tslex-project/tslex/internal/tokencache"
)

func newTokenizeCommand(flags *rootFlags) *cobra.Command {
	var (
		format   string
		cacheAge time.Duration
	)

	cmd := &cobra.Command{
		Use:   "tokenize <file>...",
		Short: "Print the token stream for one or more source files as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags)
			if err != nil {
				return err
			}
			opts := cfg.LexerOptions()
			cache := tokencache.New(cacheAge, log)

			for _, path := range args {
				toks, lexErr := cache.Tokenize(path, opts)
				if lexErr != nil {
					return fmt.Errorf("%s: %w", path, lexErr)
				}
				if err := writeTokens(cmd.OutOrStdout(), toks, format); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or pretty")
	cmd.Flags().DurationVar(&cacheAge, "cache-ttl", 0, "tokenization cache entry lifetime (0 disables expiration)")
	return cmd
}

func writeTokens(w io.Writer, toks any, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "json":
		out, err = json.Marshal(toks)
	case "pretty":
		out, err = json.MarshalIndent(toks, "", "  ")
	default:
		return fmt.Errorf("unknown format %q (want json or pretty)", format)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
