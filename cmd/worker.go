package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/muhammadolammi/resumefields/internal/batch"
	"github.com/muhammadolammi/resumefields/internal/config"
	"github.com/muhammadolammi/resumefields/internal/database"
	"github.com/muhammadolammi/resumefields/internal/extract"
	"github.com/muhammadolammi/resumefields/internal/storage"
	"github.com/muhammadolammi/resumefields/internal/vocabulary"
	"github.com/muhammadolammi/resumefields/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume extraction batches from RabbitMQ",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runWorker(cmd)
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)

	workerCmd.Flags().IntP("workers", "w", config.DefaultWorkers, "number of queue consumers")
	workerCmd.Flags().StringP("skills", "s", "", "JSON file with the skill vocabulary")

	viper.BindPFlag("workers", workerCmd.Flags().Lookup("workers"))
}

func runWorker(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cmd.Flags().Changed("skills") {
		viper.Set("skills_file", cmd.Flag("skills").Value.String())
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.ValidateWorker(); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		return fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()

	client, err := storage.New(ctx, cfg.R2)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("error connecting to rabbitmq: %w", err)
	}
	defer conn.Close()

	publisher, err := worker.NewAMQPPublisher(conn)
	if err != nil {
		return err
	}

	vocab := vocabulary.Load(cfg.SkillsFile, logger)
	processor := batch.NewProcessor(extract.New(vocab),
		batch.WithConcurrency(cfg.Concurrency),
		batch.WithLogger(logger),
	)
	w := worker.New(database.New(db), publisher, client, processor, logger)

	logger.Info("starting consumer pool",
		zap.String("version", version),
		zap.Int("workers", cfg.Workers),
		zap.String("bucket", client.Bucket()),
	)
	return w.StartConsumerWorkerPool(ctx, cfg.RabbitMQURL, cfg.Workers)
}
