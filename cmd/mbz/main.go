package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/audioscout/musicbrainz-go/client"
	"github.com/audioscout/musicbrainz-go/internal/config"
	"github.com/audioscout/musicbrainz-go/mcp/schema"
)

var serviceURL string
var userAgent string
var debug bool

func dbg(v interface{}) {
	if !debug {
		return
	}
	log.Debug().Interface("data", v).Msg("debug output")
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mbz",
		Short: "MusicBrainz CLI for looking up music metadata",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("MBZ_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(1)
	}

	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", cfg.ServiceURL, "Base URL of the MusicBrainz web service")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", cfg.UserAgent, "User-Agent header to identify this client")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newLookupCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newToolsSchemaCmd())

	return rootCmd
}

func newToolsSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools-schema",
		Short: "Print the MCP tools schema as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), string(schema.ToolsSchema()))
			return nil
		},
	}
}

// newSDKClient builds a client from the persistent flags.
func newSDKClient() *client.Client {
	opts := []client.Option{client.WithBaseURL(serviceURL)}
	if userAgent != "" {
		opts = append(opts, client.WithUserAgent(userAgent))
	}
	return client.New(opts...)
}

func newLookupCmd() *cobra.Command {
	var includes []string

	cmd := &cobra.Command{
		Use:   "lookup <kind> <mbid>",
		Short: "Look up an entity by MBID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := client.EntityKind(args[0])
			mbid := args[1]

			log.Debug().
				Str("kind", string(kind)).
				Str("mbid", mbid).
				Strs("includes", includes).
				Str("service_url", serviceURL).
				Msg("looking up entity")

			c := newSDKClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			start := time.Now()
			raw, err := c.Lookup(ctx, kind, mbid, includes...)
			elapsed := time.Since(start)

			if err != nil {
				log.Error().
					Err(err).
					Str("kind", string(kind)).
					Str("mbid", mbid).
					Dur("elapsed", elapsed).
					Msg("lookup failed")
				return err
			}

			log.Debug().
				Str("kind", string(kind)).
				Str("mbid", mbid).
				Int("bytes", len(raw)).
				Dur("elapsed", elapsed).
				Msg("lookup completed")

			return printJSON(raw)
		},
	}

	cmd.Flags().StringSliceVar(&includes, "inc", nil, "Include tokens expanding the response (comma-separated)")

	return cmd
}

func newGetCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "get <endpoint>",
		Short: "Issue a raw GET against the web service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := args[0]

			query := map[string]any{}
			for _, p := range params {
				k, v, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("--param %q is not key=value", p)
				}
				query[k] = v
			}

			log.Debug().
				Str("endpoint", endpoint).
				Interface("query", query).
				Str("service_url", serviceURL).
				Msg("raw get")

			c := newSDKClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			start := time.Now()
			raw, err := c.Get(ctx, endpoint, query)
			elapsed := time.Since(start)

			if err != nil {
				log.Error().
					Err(err).
					Str("endpoint", endpoint).
					Dur("elapsed", elapsed).
					Msg("get failed")
				return err
			}

			log.Debug().
				Str("endpoint", endpoint).
				Int("bytes", len(raw)).
				Dur("elapsed", elapsed).
				Msg("get completed")

			dbg(query)
			return printJSON(raw)
		},
	}

	cmd.Flags().StringArrayVar(&params, "param", nil, "Query parameter as key=value (repeatable)")

	return cmd
}

func printJSON(raw json.RawMessage) error {
	var buf map[string]any
	if err := json.Unmarshal(raw, &buf); err != nil {
		// non-object payloads print verbatim
		fmt.Println(string(raw))
		return nil
	}
	pretty, err := json.MarshalIndent(buf, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}
