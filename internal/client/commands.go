// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-temp-share/internal/adapter"
	"github.com/MKhiriev/go-temp-share/models"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const (
	stdoutPath         = "-"
	defaultArchiveName = "all_files.zip"
)

func (a *App) newRootCommand() *cobra.Command {
	var (
		serverURL string
		timeout   time.Duration
	)

	root := &cobra.Command{
		Use:   "go-temp-share",
		Short: "Share files through a go-temp-share server.",
		Long: `Upload files to a go-temp-share server and fetch them back by their
4-digit batch id until the batch expires.

The server address is read from ADAPTER_ADDRESS unless --server is given.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.Override(serverURL, timeout)
		},
	}
	root.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "server base URL, e.g. http://localhost:42701")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout, e.g. 30s")

	root.AddCommand(a.newUploadCommand())
	root.AddCommand(a.newListCommand())
	root.AddCommand(a.newGetCommand())
	root.AddCommand(a.newGetAllCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

func (a *App) serverAdapter() (adapter.ServerAdapter, error) {
	return a.newAdapter(a.cfg.Adapter, a.logger)
}

func (a *App) newUploadCommand() *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload files as one batch",
		Long: `Upload one or more files as a single batch and print its id and share URL.

Examples:
  go-temp-share upload report.pdf photo.jpg
  go-temp-share upload --copy notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readFiles(args)
			if err != nil {
				return err
			}

			server, err := a.serverAdapter()
			if err != nil {
				return err
			}

			batchID, err := server.Upload(cmd.Context(), files)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}

			shareURL := server.ShareURL(batchID)
			fmt.Fprintln(cmd.OutOrStdout(), renderUploaded(batchID, shareURL, files))

			if copyURL {
				if err = a.copyText(shareURL); err != nil {
					a.logger.Warn().Err(err).Msg("error copying share url")
					fmt.Fprintf(cmd.ErrOrStderr(), "could not copy to clipboard: %v\n", err)
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "copy the share URL to the clipboard")

	return cmd
}

func (a *App) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list ID",
		Short: "List the files of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.serverAdapter()
			if err != nil {
				return err
			}

			listing, err := server.List(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderListing(listing))
			return nil
		},
	}
}

func (a *App) newGetCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get ID NAME",
		Short: "Download one file of a batch",
		Long: `Download one file of a batch. The file is saved under its own name
in the current directory unless -o is given; -o - writes to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			batchID, name := args[0], args[1]
			if output == "" {
				output = filepath.Base(name)
			}

			server, err := a.serverAdapter()
			if err != nil {
				return err
			}

			return a.save(cmd, output, func(w io.Writer) (int64, error) {
				return server.Download(cmd.Context(), batchID, name, w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path, - for stdout")

	return cmd
}

func (a *App) newGetAllCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get-all ID",
		Short: "Download every file of a batch as a zip archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := a.serverAdapter()
			if err != nil {
				return err
			}

			return a.save(cmd, output, func(w io.Writer) (int64, error) {
				return server.DownloadAll(cmd.Context(), args[0], w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", defaultArchiveName, "output path, - for stdout")

	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build information and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", a.buildInfo.BuildCommit())

			server, err := a.serverAdapter()
			if err != nil {
				return err
			}

			serverVersion, err := server.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			fmt.Fprintf(out, "Server version: %s\n", serverVersion)

			return nil
		},
	}
}

// save runs download against the file at path, or stdout for "-". A failed
// download leaves no partial file behind.
func (a *App) save(cmd *cobra.Command, path string, download func(io.Writer) (int64, error)) error {
	if path == stdoutPath {
		_, err := download(cmd.OutOrStdout())
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	n, err := download(f)
	closeErr := f.Close()
	if err = errors.Join(err, closeErr); err != nil {
		os.Remove(path)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", path, humanize.IBytes(uint64(n)))
	return nil
}

func readFiles(paths []string) ([]models.UploadFile, error) {
	files := make([]models.UploadFile, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, models.UploadFile{Name: filepath.Base(path), Content: content})
	}
	return files, nil
}
