// Command hubspot-properties lists and creates contact property definitions
// on a HubSpot portal.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnwards/hubspot-contacts/connection"
	"github.com/johnwards/hubspot-contacts/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	connect := func() (connection.Connection, error) {
		return connection.NewPortalConnection(connection.Config{
			BaseURL:     cfg.BaseURL,
			AccessToken: cfg.AccessToken,
			Timeout:     cfg.Timeout,
		})
	}

	root := newRootCmd(connect)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

// connectFunc opens the connection used by a subcommand.
type connectFunc func() (connection.Connection, error)

func newRootCmd(connect connectFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "hubspot-properties",
		Short:         "Manage HubSpot contact property definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(connect), newCreateCmd(connect))
	return root
}

func newListCmd(connect connectFunc) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every property definition of the portal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := connect()
			if err != nil {
				return err
			}
			return listProperties(cmd.Context(), conn, cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "output format: table, json or yaml")
	return cmd
}

func newCreateCmd(connect connectFunc) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the property definitions described in a YAML or JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs, err := readDefinitionsFile(file)
			if err != nil {
				return err
			}
			conn, err := connect()
			if err != nil {
				return err
			}
			return createProperties(cmd.Context(), conn, cmd.OutOrStdout(), defs)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "definitions file (\"-\" reads stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readDefinitionsFile(path string) ([]definition, error) {
	if path == "-" {
		return parseDefinitions(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definitions: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parseDefinitions(f)
}
