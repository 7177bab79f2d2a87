package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ads-board/internal/client"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Create, read, update and delete one ad, printing every response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), opts.client(), opts.out)
		},
	}
}

// runDemo creates an ad, reads it, renames it, deletes it and finally checks
// that reading it again reports not found. It stops at the first error.
func runDemo(ctx context.Context, c *client.Client, out io.Writer) error {
	created, err := c.CreateAd(ctx, client.CreateAdRequest{
		Name:        "Test_name",
		Description: "Test_description",
		Owner:       "Test_owner@gmail.com",
	})
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	if err = printJSON(out, created); err != nil {
		return err
	}

	ad, err := c.GetAd(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("get ad %d: %w", created.ID, err)
	}
	if err = printJSON(out, ad); err != nil {
		return err
	}

	name, description := "Test_name_upd", "Test_description_upd"
	updated, err := c.UpdateAd(ctx, created.ID, client.UpdateAdRequest{Name: &name, Description: &description})
	if err != nil {
		return fmt.Errorf("update ad %d: %w", created.ID, err)
	}
	if err = printJSON(out, updated); err != nil {
		return err
	}

	deleted, err := c.DeleteAd(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("delete ad %d: %w", created.ID, err)
	}
	if err = printJSON(out, deleted); err != nil {
		return err
	}

	_, err = c.GetAd(ctx, created.ID)
	switch {
	case client.IsNotFound(err):
		_, err = fmt.Fprintf(out, "ad %d is gone\n", created.ID)
		return err
	case err != nil:
		return fmt.Errorf("get deleted ad %d: %w", created.ID, err)
	default:
		return fmt.Errorf("ad %d still readable after delete", created.ID)
	}
}
