package main

import (
	"github.com/spf13/cobra"

	"ads-board/internal/client"
)

func newCreateCmd(opts *options) *cobra.Command {
	var req client.CreateAdRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an ad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client().CreateAd(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(opts.out, resp)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "ad title")
	cmd.Flags().StringVar(&req.Description, "description", "", "ad description")
	cmd.Flags().StringVar(&req.Owner, "owner", "", "owner identity, stored hashed")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := opts.client().GetAd(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(opts.out, resp)
		},
	}
}

func newUpdateCmd(opts *options) *cobra.Command {
	var name, description, owner string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change some fields of an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var req client.UpdateAdRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("description") {
				req.Description = &description
			}
			if cmd.Flags().Changed("owner") {
				req.Owner = &owner
			}
			resp, err := opts.client().UpdateAd(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			return printJSON(opts.out, resp)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&owner, "owner", "", "new owner identity")
	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := opts.client().DeleteAd(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(opts.out, resp)
		},
	}
}

func newPingCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the API and its storage are up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().Ping(cmd.Context()); err != nil {
				return err
			}
			return printJSON(opts.out, client.StatusResponse{Status: "ok"})
		},
	}
}
