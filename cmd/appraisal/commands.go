/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tomoncle/appraisal"
	"github.com/tomoncle/appraisal/database"
	"github.com/tomoncle/appraisal/entity"
)

type cli struct {
	configPath string
	app        *appraisal.App
}

// newRootCmd returns the command tree and its state; close releases the
// connection opened by whichever command ran.
func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}
	root := &cobra.Command{
		Use:          "appraisal",
		Short:        "Manage employees and their performance reviews",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := database.LoadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.app, err = appraisal.Open(cmd.Context(), cfg)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a YAML config file")
	root.AddCommand(c.migrateCmd(), c.dropCmd(), c.employeeCmd(), c.reviewCmd())
	return root, c
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the employees and reviews tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.CreateTables(cmd.Context())
		},
	}
}

func (c *cli) dropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "Drop the reviews and employees tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.DropTables(cmd.Context())
		},
	}
}

func (c *cli) employeeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "employee", Short: "Manage employees"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME JOB_TITLE",
			Short: "Create an employee",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := c.app.Employees.Create(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), e)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List employees",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				employees, err := c.app.Employees.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				for _, e := range employees {
					fmt.Fprintln(cmd.OutOrStdout(), e)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "reviews EMPLOYEE_ID",
			Short: "List the reviews of an employee",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				reviews, err := c.app.Reviews.ListByEmployee(cmd.Context(), id)
				if err != nil {
					return err
				}
				for _, r := range reviews {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) reviewCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "review", Short: "Manage performance reviews"}

	var year, summary string
	var employeeID int64
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change the year, summary or employee of a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.findReview(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("year") {
				if err := r.SetYear(year); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("summary") {
				if err := r.SetSummary(summary); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("employee") {
				if err := r.SetEmployeeID(cmd.Context(), c.app.Reviews.Lookup(), employeeID); err != nil {
					return err
				}
			}
			if err := c.app.Reviews.Update(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
	update.Flags().StringVar(&year, "year", "", "new review year")
	update.Flags().StringVar(&summary, "summary", "", "new summary")
	update.Flags().Int64Var(&employeeID, "employee", 0, "new employee id")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add YEAR SUMMARY EMPLOYEE_ID",
			Short: "Create a review",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				employeeID, err := parseID(args[2])
				if err != nil {
					return err
				}
				r, err := c.app.Reviews.Create(cmd.Context(), args[0], args[1], employeeID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all reviews",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				reviews, err := c.app.Reviews.GetAll(cmd.Context())
				if err != nil {
					return err
				}
				for _, r := range reviews {
					fmt.Fprintln(cmd.OutOrStdout(), r)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Show one review",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := c.findReview(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			},
		},
		update,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a review",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := c.findReview(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := c.app.Reviews.Delete(cmd.Context(), r); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Review %s deleted\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) findReview(ctx context.Context, arg string) (*entity.Review, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, err
	}
	r, err := c.app.Reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("review %d not found", id)
	}
	return r, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
