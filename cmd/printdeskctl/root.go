package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/polkiloo/printdesk/internal/adapter/printdesk"
)

type clientFactory func(serverURL string) (printdesk.Client, error)

func defaultClientFactory(serverURL string) (printdesk.Client, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := printdesk.NewHTTPClient(serverURL, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

type cli struct {
	out       io.Writer
	serverURL string
	newClient clientFactory
}

func (c *cli) client() (printdesk.Client, error) {
	return c.newClient(c.serverURL)
}

func newRootCmd(out io.Writer, newClient clientFactory) *cobra.Command {
	c := &cli{out: out, newClient: newClient}

	root := &cobra.Command{
		Use:           "printdeskctl",
		Short:         "Operate a print desk service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.serverURL, "server", envOr("PRINTDESK_SERVER", "http://localhost:8080"), "print desk base URL")

	root.AddCommand(c.shopsCmd(), c.queueCmd(), c.healthCmd())
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			if err := client.Health(cmd.Context()); err != nil {
				return fmt.Errorf("health: %w", err)
			}
			fmt.Fprintln(c.out, "ok")
			return nil
		},
	}
}
