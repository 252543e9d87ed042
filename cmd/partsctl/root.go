// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/loonia/internal/bootstrap"
	"github.com/taibuivan/loonia/internal/core/catalog"
	"github.com/taibuivan/loonia/internal/platform/apperr"
	"github.com/taibuivan/loonia/internal/platform/config"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	page    int
	limit   int
	file    string
	verbose bool

	out    io.Writer
	logger *slog.Logger
}

// newRootCommand builds the command tree writing results to out and logs to errOut.
func newRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{out: out}

	root := &cobra.Command{
		Use:           "partsctl",
		Short:         "Query the Loonia parts catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = bootstrap.NewLogger(errOut, level)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.page, "page", 1, "page number (1-indexed)")
	flags.IntVar(&opts.limit, "limit", 0, "items per page (0 uses the resolver default)")
	flags.StringVarP(&opts.file, "file", "f", "", "read products from a JSON export instead of the configured backend")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug events to stderr")

	root.AddCommand(
		searchCommand(opts, "category <code>", "List products of a category code", (*catalog.Service).ResolveCategory),
		subCategoryCommand(opts),
		searchCommand(opts, "frame <code>", "List products fitting a frame code", (*catalog.Service).ResolveFrame),
		searchCommand(opts, "family <family>", "List products of a vehicle family", (*catalog.Service).ResolveFamily),
		searchCommand(opts, "title <prefix>", "List products whose parent title starts with prefix", (*catalog.Service).ResolveTitle),
		partCommand(opts),
		productCommand(opts),
		seedCommand(opts),
	)

	root.SetOut(out)
	root.SetErr(errOut)

	return root
}

// # Store Selection

// withService opens the store selected by opts, runs fn, and releases the store.
func (opts *options) withService(ctx context.Context, fn func(*catalog.Service) (any, error)) error {
	store, closeStore, err := opts.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := fn(catalog.NewService(store, opts.logger, nil))
	if err != nil {
		return describe(err)
	}

	encoder := json.NewEncoder(opts.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func (opts *options) openStore(ctx context.Context) (catalog.Store, func(), error) {
	if opts.file != "" {
		store, err := loadFile(ctx, opts.file, opts.logger)
		return store, func() {}, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	backend, err := bootstrap.Open(ctx, cfg, opts.logger, nil)
	if err != nil {
		return nil, nil, err
	}
	return backend.Store, backend.Close, nil
}

func loadFile(ctx context.Context, path string, logger *slog.Logger) (*catalog.MemoryStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return catalog.LoadMemoryStore(ctx, file, logger)
}

// describe turns application errors into short CLI messages.
func describe(err error) error {
	if appError := apperr.As(err); appError != nil {
		if appError.Cause != nil {
			return fmt.Errorf("%s: %w", appError.Code, appError.Cause)
		}
		return errors.New(appError.Code + ": " + appError.Message)
	}
	return err
}
