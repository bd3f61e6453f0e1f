package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"imgupload/internal/domain"
	"imgupload/internal/port"
	"imgupload/internal/report"
	"imgupload/internal/service"
	"imgupload/internal/source"
	"imgupload/internal/watch"
)

// StorageFactory returns the object store used for s3:// inputs. It is only
// called when such an input is given.
type StorageFactory func(ctx context.Context) (port.ObjectStorage, error)

type Dependencies struct {
	Handler     service.UploadHandler
	Storage     StorageFactory
	Concurrency int
	Output      io.Writer
	Logger      *slog.Logger
}

func NewRootCommand(dependencies Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "uploader",
		Short:         "Upload images to the configured endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(buildUploadCommand(dependencies))
	root.AddCommand(buildWatchCommand(dependencies))
	return root
}

func buildUploadCommand(dependencies Dependencies) *cobra.Command {
	var (
		s3Inputs     []string
		dataURLInput string
		nameInput    string
		reportPath   string
	)

	command := &cobra.Command{
		Use:   "upload [FILE...]",
		Short: "Upload each selected image once and print the endpoint's response",
		Long:  "Upload each selected image once and print the endpoint's response.\n\n" +
			"A local file that cannot be read is reported through the failure notifier " +
			"and counts as a failed upload. Malformed --s3 or --data-url inputs stop the " +
			"command before anything is sent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nameInput != "" && dataURLInput == "" {
				return errors.New("--name requires --data-url")
			}

			files, err := resolveInputs(cmd.Context(), dependencies, args, s3Inputs, dataURLInput, nameInput)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.New("no image selected")
			}

			completions := uploadAll(cmd.Context(), dependencies, files)

			if reportPath != "" {
				if err := report.WriteFile(reportPath, completions); err != nil {
					return err
				}
			}

			output := dependencies.Output
			if output == nil {
				output = io.Discard
			}

			failed := 0
			for _, completion := range completions {
				if !completion.Succeeded() {
					failed++
					continue
				}
				if _, writeErr := fmt.Fprintln(output, completion.Result.String()); writeErr != nil {
					return writeErr
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, len(completions))
			}
			return nil
		},
	}

	command.Flags().StringArrayVar(&s3Inputs, "s3", nil, "S3 object to upload (s3://bucket/key), repeatable")
	command.Flags().StringVar(&dataURLInput, "data-url", "", "Inline image as a data URL")
	command.Flags().StringVar(&nameInput, "name", "", "File name reported for --data-url")
	command.Flags().StringVar(&reportPath, "report", "", "Write a per-upload report (.csv or .xlsx)")

	return command
}

func buildWatchCommand(dependencies Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch DIR",
		Short: "Upload every image created in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := dependencies.Logger
			if logger == nil {
				logger = slog.New(slog.DiscardHandler)
			}
			return watch.NewBinder(args[0], dependencies.Handler, logger).Run(cmd.Context())
		},
	}
}

// resolveInputs turns every argument into a file handle, in the order given.
func resolveInputs(ctx context.Context, dependencies Dependencies, paths, s3URIs []string, dataURL, name string) ([]port.FileHandle, error) {
	var files []port.FileHandle
	for _, p := range paths {
		f, err := source.NewLocalFile(p)
		if err != nil {
			// Uploaded anyway so the failure is notified like a read error.
			files = append(files, source.NewUnreadableFile(filepath.Base(p), err))
			continue
		}
		files = append(files, f)
	}

	if len(s3URIs) > 0 {
		if dependencies.Storage == nil {
			return nil, errors.New("s3 storage is not configured")
		}
		storage, err := dependencies.Storage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		for _, uri := range s3URIs {
			f, err := source.NewS3Object(ctx, storage, uri)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}
	}

	if dataURL != "" {
		f, err := source.NewDataURLFile(dataURL, name)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// uploadAll runs every upload to completion. Failures are already reported by
// the handler, so they never cancel the remaining uploads.
func uploadAll(ctx context.Context, dependencies Dependencies, files []port.FileHandle) []*domain.Completion {
	limit := dependencies.Concurrency
	if limit <= 0 {
		limit = 1
	}

	completions := make([]*domain.Completion, len(files))
	var group errgroup.Group
	group.SetLimit(limit)
	for i, f := range files {
		group.Go(func() error {
			completions[i] = dependencies.Handler.UploadImage(ctx, f)
			return nil
		})
	}
	_ = group.Wait()
	return completions
}
