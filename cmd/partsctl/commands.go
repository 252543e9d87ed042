// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/loonia/internal/core/catalog"
	"github.com/taibuivan/loonia/pkg/pagination"
)

// resolver is the shape shared by the product list resolvers.
type resolver func(*catalog.Service, context.Context, catalog.Query) (pagination.Page[*catalog.Product], error)

// query builds a resolver query from the first argument and the page flags.
func (opts *options) query(term string) catalog.Query {
	return catalog.Query{Term: term, Page: opts.page, Limit: opts.limit}
}

func searchCommand(opts *options, use, short string, resolve resolver) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(service *catalog.Service) (any, error) {
				return resolve(service, cmd.Context(), opts.query(args[0]))
			})
		},
	}
}

func subCategoryCommand(opts *options) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "subcategory <text>",
		Short: "List products whose name contains text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(service *catalog.Service) (any, error) {
				q := opts.query(args[0])
				q.Scope = scope
				return service.ResolveSubCategory(cmd.Context(), q)
			})
		},
	}
	cmd.Flags().StringVar(&scope, "category", "", "restrict to one category code")

	return cmd
}

func partCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "part <number>",
		Short: "Find every occurrence of a part number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(service *catalog.Service) (any, error) {
				return service.ResolvePart(cmd.Context(), opts.query(args[0]))
			})
		},
	}
}

func productCommand(opts *options) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "product [id]",
		Short: "Show one product, one of its sections, or list all products",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withService(cmd.Context(), func(service *catalog.Service) (any, error) {
				switch {
				case len(args) == 0:
					return service.ListProducts(cmd.Context(), opts.page, opts.limit)
				case section != "":
					return service.GetSection(cmd.Context(), args[0], section)
				default:
					return service.GetProduct(cmd.Context(), args[0])
				}
			})
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "print only the section with this tag")

	return cmd
}

func seedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a JSON export into the PostgreSQL backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file == "" {
				return errors.New("seed needs --file")
			}

			source, err := loadFile(cmd.Context(), opts.file, opts.logger)
			if err != nil {
				return err
			}
			products, err := source.FetchAll(cmd.Context())
			if err != nil {
				return err
			}

			target, closeTarget, err := openPostgres(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeTarget()

			if err := target.InsertProducts(cmd.Context(), products); err != nil {
				return describe(err)
			}

			_, err = fmt.Fprintf(opts.out, "seeded %d products\n", len(products))
			return err
		},
	}
}
