package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumefields/internal/batch"
	"github.com/muhammadolammi/resumefields/internal/config"
	"github.com/muhammadolammi/resumefields/internal/extract"
	"github.com/muhammadolammi/resumefields/internal/storage"
	"github.com/muhammadolammi/resumefields/internal/vocabulary"
)

var errNoDocuments = errors.New("no documents to process")

var parseCmd = &cobra.Command{
	Use:   "parse [dir|file]...",
	Short: "Extract fields from local résumés or a bucket prefix and print them as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runParse(ctx, cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("skills", "s", "", "JSON file with the skill vocabulary")
	parseCmd.Flags().StringP("output", "o", "", "write results to this file instead of stdout")
	parseCmd.Flags().IntP("concurrency", "c", config.DefaultConcurrency, "documents processed in parallel")
	parseCmd.Flags().String("bucket-prefix", "", "process the objects under this prefix of the R2 bucket")

	viper.BindPFlag("skills_file", parseCmd.Flags().Lookup("skills"))
	viper.BindPFlag("concurrency", parseCmd.Flags().Lookup("concurrency"))
}

func runParse(ctx context.Context, cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	sources, err := localSources(args)
	if err != nil {
		return err
	}

	prefix, _ := cmd.Flags().GetString("bucket-prefix")
	if cmd.Flags().Changed("bucket-prefix") {
		remote, err := bucketSources(ctx, cfg, prefix)
		if err != nil {
			return err
		}
		sources = append(sources, remote...)
	}

	if len(sources) == 0 {
		return errNoDocuments
	}

	vocab := vocabulary.Load(cfg.SkillsFile, logger)
	processor := batch.NewProcessor(extract.New(vocab),
		batch.WithConcurrency(cfg.Concurrency),
		batch.WithLogger(logger),
	)

	logger.Info("starting the extraction",
		zap.String("version", version),
		zap.Int("documents", len(sources)),
		zap.Int("concurrency", cfg.Concurrency),
	)
	results := processor.Run(ctx, sources)

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		return writeResultsFile(path, results)
	}
	return writeResults(cmd.OutOrStdout(), results)
}

// localSources expands the arguments into sources: directories contribute
// their supported files, anything else is taken as a single file.
func localSources(args []string) ([]batch.Source, error) {
	var sources []batch.Source
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			sources = append(sources, batch.FileSource{Path: arg})
			continue
		}

		found, err := batch.DirSources(arg)
		if err != nil {
			return nil, err
		}
		sources = append(sources, found...)
	}
	return sources, nil
}

func bucketSources(ctx context.Context, cfg *config.Config, prefix string) ([]batch.Source, error) {
	if err := cfg.ValidateStorage(); err != nil {
		return nil, err
	}

	client, err := storage.New(ctx, cfg.R2)
	if err != nil {
		return nil, err
	}

	objects, err := client.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		keys = append(keys, obj.Key)
	}
	return batch.ObjectSources(client, keys), nil
}

// writeResultsFile writes the results to path. A failed close is reported
// as an error.
func writeResultsFile(path string, results []batch.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := writeResults(f, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

func writeResults(w io.Writer, results []batch.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
