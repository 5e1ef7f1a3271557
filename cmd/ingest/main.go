package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hqanh/theorytrainer/config"
	"github.com/hqanh/theorytrainer/database"
	"github.com/hqanh/theorytrainer/internal/logger"
	"github.com/hqanh/theorytrainer/internal/model"
	"github.com/hqanh/theorytrainer/internal/repository"
	"github.com/hqanh/theorytrainer/internal/service"
	"github.com/hqanh/theorytrainer/internal/textextract"
)

var rootCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Extract and curate concept definitions from documents",
	Long: `Extract concept/definition candidates from the given documents and
walk through interactive curation. With no arguments, every file in the
configured sample directory is processed.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	logger.Init()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Ingestion failed")
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&model.Concept{}, &model.Attempt{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	files := args
	if len(files) == 0 {
		files, err = scanDir(cfg.Ingest.SampleDir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Printf("No files found in %s\n", cfg.Ingest.SampleDir)
			return nil
		}
	}

	extractor := textextract.New(textextract.Config{
		TikaURL: cfg.Tika.URL,
		Timeout: cfg.Tika.Timeout,
	})
	curator := newStdinCurator(os.Stdin, os.Stdout)
	curationSvc := service.NewCurationService(repository.NewConceptRepository(db), extractor, curator)

	for _, file := range files {
		report, err := curationSvc.IngestFile(cmd.Context(), file)
		if err != nil {
			// Per-file extraction problems are reported and the batch
			// continues; anything else (store, curator) aborts the run.
			if errors.Is(err, textextract.ErrUnsupportedFormat) || errors.Is(err, textextract.ErrExtraction) {
				log.Warn().Err(err).Str("file", file).Msg("Skipping file")
				fmt.Printf("%s: skipped (%v)\n", file, err)
				continue
			}
			if report != nil {
				fmt.Printf("%s: aborted with %d inserted, %d pending\n", file, report.Inserted, report.Pending)
			}
			return err
		}
		fmt.Printf("%s: %d candidates, %d inserted, %d skipped, %d rejected\n",
			file, report.Candidates, report.Inserted, report.Skipped, report.Rejected)
	}

	fmt.Println("Done.")
	return nil
}

// scanDir lists the regular files of dir in lexical order.
func scanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
