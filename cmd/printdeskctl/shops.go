package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/polkiloo/printdesk/internal/server/http/dto"
)

func (c *cli) shopsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shops",
		Short: "Search and register print shops",
	}
	cmd.AddCommand(c.shopsSearchCmd(), c.shopsRegisterCmd())
	return cmd
}

func (c *cli) shopsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Case-insensitive search by shop name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			shops, err := client.SearchShops(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("search shops: %w", err)
			}
			if len(shops) == 0 {
				fmt.Fprintln(c.out, "no shops found")
				return nil
			}
			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tOWNER\tADDRESS")
			for _, s := range shops {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.ShopName, s.Name, s.ShopAddress)
			}
			return tw.Flush()
		},
	}
}

func (c *cli) shopsRegisterCmd() *cobra.Command {
	var req dto.ShopRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			shop, err := client.RegisterShop(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("register shop: %w", err)
			}
			fmt.Fprintf(c.out, "registered %s (%s)\n", shop.ShopName, shop.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Name, "owner", "", "owner name")
	flags.StringVar(&req.Email, "email", "", "contact email")
	flags.StringVar(&req.Phone, "phone", "", "contact phone")
	flags.StringVar(&req.ShopName, "name", "", "shop name")
	flags.StringVar(&req.ShopAddress, "address", "", "shop address")
	for _, name := range []string{"owner", "email", "phone", "name", "address"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
