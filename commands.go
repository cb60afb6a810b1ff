package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/fintrack/internal/auth"
	"github.com/carson-networks/fintrack/internal/classifier"
	"github.com/carson-networks/fintrack/internal/ingest"
	"github.com/carson-networks/fintrack/internal/logging"
	"github.com/carson-networks/fintrack/internal/samplegen"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CC66")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var (
	importOwner     string
	importFile      string
	importBatchSize int
	importMigrate   bool

	trainSamples string
	trainOut     string

	sampleRows int
	sampleOut  string
	sampleSeed uint64

	tokenOwner string
	tokenTTL   time.Duration
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Ingest a local CSV statement for an owner",
	RunE:  runImport,
}

var trainCmd = &cobra.Command{
	Use:   "train-classifier",
	Short: "Train the category model and save it",
	RunE:  runTrain,
}

var sampleCmd = &cobra.Command{
	Use:   "generate-sample",
	Short: "Write a synthetic statement CSV",
	RunE:  runGenerateSample,
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign an API token for an owner",
	RunE:  runToken,
}

func init() {
	importCmd.Flags().StringVar(&importOwner, "owner", "", "owner id the rows belong to")
	importCmd.Flags().StringVar(&importFile, "file", "", "CSV file to ingest")
	importCmd.Flags().IntVar(&importBatchSize, "batch-size", 0, "rows per committed batch (0 = configured default)")
	importCmd.Flags().BoolVar(&importMigrate, "migrate", false, "apply database migrations first")
	_ = importCmd.MarkFlagRequired("owner")
	_ = importCmd.MarkFlagRequired("file")

	trainCmd.Flags().StringVar(&trainSamples, "samples", "", "YAML samples file (built in seed set when empty)")
	trainCmd.Flags().StringVar(&trainOut, "out", "", "model output path (CLASSIFIER_MODEL_PATH when empty)")

	sampleCmd.Flags().IntVar(&sampleRows, "rows", 500, "number of data rows")
	sampleCmd.Flags().StringVar(&sampleOut, "out", "", "output path (sample_transactions_<rows>.csv when empty)")
	sampleCmd.Flags().Uint64Var(&sampleSeed, "seed", 1, "random seed")

	tokenCmd.Flags().StringVar(&tokenOwner, "owner", "", "owner id to embed as user_id")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("owner")

	rootCmd.AddCommand(importCmd, trainCmd, sampleCmd, tokenCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	if importBatchSize < 0 {
		return errors.New("--batch-size must not be negative")
	}

	env, logger, err := loadEnv()
	if err != nil {
		return err
	}

	file, err := os.Open(importFile)
	if err != nil {
		return err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return err
	}

	a, err := newApp(env, logger, importMigrate)
	if err != nil {
		return err
	}
	defer a.Close()

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetDescription("importing"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	ctx := logging.WithLogData(cmd.Context(), logging.NewLogData(logger))
	start := time.Now()
	report, err := a.service.Ingest.IngestWithProgress(ctx, file, importOwner, importBatchSize, func(p ingest.Progress) {
		_ = bar.Set64(p.BytesRead)
	})
	_ = bar.Finish()
	if err != nil {
		var ingestErr *ingest.IngestionError
		if errors.As(err, &ingestErr) && ingestErr.Kind == ingest.KindStorage {
			fmt.Println(failStyle.Render(fmt.Sprintf("aborted after %d committed rows", ingestErr.Inserted)))
		}
		return err
	}

	fmt.Println(renderReport(report, time.Since(start)))
	return nil
}

func renderReport(report *ingest.Report, elapsed time.Duration) string {
	lines := titleStyle.Render("Import complete") + "\n" +
		successStyle.Render(fmt.Sprintf("inserted %d", report.Inserted)) + "  " +
		failStyle.Render(fmt.Sprintf("failed %d", report.Failed)) + "\n" +
		mutedStyle.Render(fmt.Sprintf("encoding %s, %s", report.Encoding, elapsed.Round(time.Millisecond)))

	for _, row := range report.Preview {
		lines += "\n" + fmt.Sprintf("%s  %-32.32s %12s  %s",
			row.Date.Format("2006-01-02"), row.Description, row.Amount.StringFixed(2), mutedStyle.Render(row.Category))
	}
	return boxStyle.Render(lines)
}

func runTrain(_ *cobra.Command, _ []string) error {
	env, logger, err := loadEnv()
	if err != nil {
		return err
	}

	samples := classifier.SeedSamples()
	if trainSamples != "" {
		f, err := os.Open(trainSamples)
		if err != nil {
			return err
		}
		defer f.Close()
		if samples, err = classifier.LoadSamples(f); err != nil {
			return err
		}
	}

	out := trainOut
	if out == "" {
		out = env.ClassifierModelPath
	}

	model := classifier.NewBayesClassifier()
	if err := model.Train(samples); err != nil {
		return err
	}
	if err := model.Save(out); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"samples":    len(samples),
		"categories": model.Categories(),
		"path":       out,
	}).Info("Classifier.Train.Complete")
	return nil
}

func runGenerateSample(_ *cobra.Command, _ []string) error {
	if sampleRows < 1 {
		return errors.New("--rows must be positive")
	}
	out := sampleOut
	if out == "" {
		out = samplegen.Filename(sampleRows)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	err = samplegen.Generate(f, classifier.SeedSamples(), samplegen.Options{Rows: sampleRows, Seed: sampleSeed})
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("wrote %d rows to %s", sampleRows, out)))
	return nil
}

func runToken(_ *cobra.Command, _ []string) error {
	env, _, err := loadEnv()
	if err != nil {
		return err
	}
	token, err := auth.NewTokenVerifier(env.SecretKey).SignToken(tokenOwner, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

