package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jask/courierapp/internal/config"
)

func newDoctorsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Inspect the doctors of a fresh session",
	}

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List doctors, optionally filtered by name, email or specialization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.start(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			docs, err := env.session.Doctors.Filter(cmd.Context(), query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(docs) == 0 {
				if query == "" {
					fmt.Fprintln(out, "No doctors available. Add your first doctor!")
					return nil
				}
				fmt.Fprintln(out, "No doctors found matching your search.")
				if hint, err := env.session.Doctors.Suggest(cmd.Context(), query); err == nil && hint != "" {
					fmt.Fprintf(out, "Did you mean %q?\n", hint)
				}
				return nil
			}
			rows := make([][]string, 0, len(docs))
			for _, d := range docs {
				rows = append(rows, []string{
					d.ID, d.Name, d.Email, d.Phone, d.Specialization,
					string(d.Status), strconv.Itoa(d.TotalOrders), d.JoinDate.Format(env.cfg.UI.DateFormat),
				})
			}
			return printTable(out, []string{"ID", "NAME", "EMAIL", "PHONE", "SPECIALIZATION", "STATUS", "ORDERS", "JOINED"}, rows)
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "search term")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Print the doctor summary cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.start(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			s, err := env.session.Doctors.Stats(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Doctors: %d\n", s.Total)
			fmt.Fprintf(out, "Active Doctors: %d\n", s.Active)
			fmt.Fprintf(out, "Total Orders: %d\n", s.TotalOrders)
			fmt.Fprintf(out, "Avg Orders/Doctor: %d\n", s.AvgOrders)
			return nil
		},
	}

	cmd.AddCommand(list, stats)
	return cmd
}

func newDriversCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Inspect the driver roster",
	}
	var onlyAvailable bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List drivers and their availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.start(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			drivers := env.session.Drivers.Visible(onlyAvailable)
			rows := make([][]string, 0, len(drivers))
			for _, d := range drivers {
				state := "Offline"
				if d.Available {
					state = "Available"
				}
				rows = append(rows, []string{d.ID, d.Name, state})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "STATUS"}, rows)
		},
	}
	list.Flags().BoolVar(&onlyAvailable, "available", false, "only show available drivers")
	cmd.AddCommand(list)
	return cmd
}

func newOrdersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect the orders board",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.start(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			orders := env.session.Orders.List()
			rows := make([][]string, 0, len(orders))
			for _, o := range orders {
				rows = append(rows, []string{"#" + o.ID, o.Address, string(o.Status)})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "ADDRESS", "STATUS"}, rows)
		},
	})
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func printTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}
