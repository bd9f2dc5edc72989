package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bookpub/internal/client"
	"bookpub/internal/models"
)

func newStartCommand(ctx *commandContext) *cobra.Command {
	var (
		sourceURL   string
		searchQuery string
		enhancement string
		audience    string
		audio       bool
		approval    bool
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a book publishing workflow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sourceURL == "" && searchQuery == "" {
				return errors.New("provide either --url or --query")
			}

			req := models.NewWorkflowRequest()
			if sourceURL != "" {
				req.SourceURL = &sourceURL
			}
			if searchQuery != "" {
				req.SearchQuery = &searchQuery
			}
			req.EnhancementType = enhancement
			req.TargetAudience = audience
			req.IncludeAudio = audio
			req.RequireHumanApproval = approval
			if err := req.Validate(); err != nil {
				return err
			}

			resp, err := ctx.client().Start(cmd.Context(), req)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nSession: %s\nStatus:  %s\n", resp.Message, resp.SessionID, resp.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceURL, "url", "", "Source URL to publish from")
	cmd.Flags().StringVar(&searchQuery, "query", "", "Search query to find the source text")
	cmd.Flags().StringVar(&enhancement, "enhancement", models.EnhancementCreativeRewrite, "Enhancement type")
	cmd.Flags().StringVar(&audience, "audience", models.AudienceGeneral, "Target audience")
	cmd.Flags().BoolVar(&audio, "audio", true, "Generate an audio book version")
	cmd.Flags().BoolVar(&approval, "approval", false, "Require human approval before publishing")
	return cmd
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <session-id>",
		Short: "Poll a workflow once (advances its progress)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := ctx.client().Status(cmd.Context(), args[0])
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("workflow %s not found", args[0])
			}
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), w)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderWorkflow(w))
			return nil
		},
	}
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <session-id>",
		Short: "Poll a workflow until it completes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return errors.New("--interval must be positive")
			}
			c := ctx.client()
			out := cmd.OutOrStdout()
			for {
				w, err := c.Status(cmd.Context(), args[0])
				if errors.Is(err, client.ErrNotFound) {
					return fmt.Errorf("workflow %s not found", args[0])
				}
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					if err := writeJSON(out, w); err != nil {
						return err
					}
				} else {
					fmt.Fprintln(out, progressLine(w))
				}
				if w.IsCompleted() {
					return nil
				}

				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(interval):
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "Delay between polls")
	return cmd
}
