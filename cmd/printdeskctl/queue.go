package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
)

func (c *cli) queueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and work the pickup queue",
	}
	cmd.AddCommand(c.queueListCmd(), c.queueCompleteCmd(), c.queueVerifyCmd(), c.queueRejectCmd())
	return cmd
}

func (c *cli) queueListCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queued orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			queue, err := client.Queue(cmd.Context(), search)
			if err != nil {
				return fmt.Errorf("list queue: %w", err)
			}

			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tID\tLABEL\tSTATE\tDOCS\tAMOUNT")
			for _, e := range queue.Entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", e.QueueNumber, e.ID, e.DisplayLabel, e.State, len(e.Documents), e.TotalAmount)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "pending: %d, documents: %d\n", queue.Stats.PendingEntries, queue.Stats.TotalDocuments)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by display label")
	return cmd
}

func (c *cli) queueCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark an entry ready for code verification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			if err := client.Complete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("complete %s: %w", args[0], err)
			}
			fmt.Fprintf(c.out, "%s awaiting verification\n", args[0])
			return nil
		},
	}
}

func (c *cli) queueVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify ID CODE",
		Short: "Check the customer's pickup code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			err = client.Verify(cmd.Context(), args[0], args[1])
			switch {
			case errors.Is(err, domainErrors.ErrCodeMismatch):
				return fmt.Errorf("code mismatch for %s, entry returned to pending", args[0])
			case err != nil:
				return fmt.Errorf("verify %s: %w", args[0], err)
			}
			fmt.Fprintf(c.out, "%s verified and removed\n", args[0])
			return nil
		},
	}
}

func (c *cli) queueRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Remove an entry without a code check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			if err := client.Reject(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("reject %s: %w", args[0], err)
			}
			fmt.Fprintf(c.out, "%s rejected\n", args[0])
			return nil
		},
	}
}
