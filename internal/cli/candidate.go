package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newCandidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "candidate",
		Aliases: []string{"candidates"},
		Short:   "Candidate management commands",
	}

	cmd.AddCommand(newCandidateListCmd())
	cmd.AddCommand(newCandidateGetCmd())
	cmd.AddCommand(newCandidateCreateCmd())
	cmd.AddCommand(newCandidateReplaceCmd())
	cmd.AddCommand(newCandidateDeleteCmd())

	return cmd
}

func candidatePath(id string) string {
	return "/api/v1/candidates/" + url.PathEscape(id)
}

func newCandidateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Candidate

			if err := client.Get("/api/v1/candidates", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newCandidateGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Candidate

			if err := client.Get(candidatePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

// candidateFlags binds the flags shared by create and replace
type candidateFlags struct {
	firstName string
	lastName  string
	offer     bool
}

func (f *candidateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "Last name (required)")
	cmd.Flags().BoolVar(&f.offer, "offer", false, "Mark the candidate to receive an offer")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
}

func newCandidateCreateCmd() *cobra.Command {
	var flags candidateFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a candidate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := Candidate{
				FirstName:       flags.firstName,
				LastName:        flags.lastName,
				ShouldSendOffer: flags.offer,
			}
			var result Candidate

			if err := client.Post("/api/v1/candidates", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCandidateReplaceCmd() *cobra.Command {
	var flags candidateFlags

	cmd := &cobra.Command{
		Use:   "replace <id>",
		Short: "Replace every field of a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := Candidate{
				ID:              args[0],
				FirstName:       flags.firstName,
				LastName:        flags.lastName,
				ShouldSendOffer: flags.offer,
			}

			if err := client.Put(candidatePath(args[0]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Candidate %s replaced", args[0]))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCandidateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Candidate

			if err := client.Delete(candidatePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
