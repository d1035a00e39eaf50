package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultServer = "http://localhost:8080"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PROFILECTL")
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "profilectl",
		Short:        "Inspect and update a running profile board",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("server", defaultServer, "profile board base URL (env PROFILECTL_SERVER)")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	_ = v.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = v.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	clientFor := func() *client {
		return newClient(v.GetString("server"), v.GetDuration("timeout"))
	}

	rootCmd.AddCommand(newListCmd(clientFor), newAddCmd(clientFor), newLikeCmd(clientFor))
	return rootCmd
}

func newListCmd(clientFor func() *client) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := clientFor().list(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No profiles yet.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLIKES")
			for _, item := range items {
				fmt.Fprintf(w, "%d\t%s\t%d\n", item.ID, item.Name, item.Likes)
			}
			return w.Flush()
		},
	}
}

func newAddCmd(clientFor func() *client) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := clientFor().add(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added profile %d (%s)\n", created.ID, created.Name)
			return nil
		},
	}
}

func newLikeCmd(clientFor func() *client) *cobra.Command {
	return &cobra.Command{
		Use:   "like ID",
		Short: "Like a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid profile id %q", args[0])
			}

			updated, ok, err := clientFor().like(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "no profile with id %d, nothing changed\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d likes\n", updated.Name, updated.Likes)
			return nil
		},
	}
}
