// Package main implements the resume_matcher CLI.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Scores one resume against one job description, printing the composite score with its per-component breakdown and improvement recommendations.",
	RunE:  runScore,
}

var (
	scoreResume  string
	scoreJob     string
	scoreJobURL  string
	scoreConfig  string
	scoreOutput  string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume document (ExtractedDocument JSON or plain text) (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description document (ExtractedDocument JSON or plain text)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job posting text from")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to write the ScoreBreakdown JSON to (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted breakdown instead of raw JSON")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	if scoreJob == "" && scoreJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if scoreJob != "" && scoreJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadCLIConfig(scoreConfig)
	if err != nil {
		return err
	}

	resume, err := loadDocument(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	var job *types.ExtractedDocument
	if scoreJobURL != "" {
		text, err := fetch.JobPostingText(ctx, scoreJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		job = &types.ExtractedDocument{RawText: text}
	} else {
		job, err = loadDocument(scoreJob)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
	}

	engine, closeProvider, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeProvider() }()

	breakdown, err := engine.Score(ctx, job, resume)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreBreakdown(breakdown)
		printer.PrintSkillMatch(breakdown)
		printer.PrintRecommendations(breakdown)
	}

	return writeBreakdownJSON(breakdown, scoreOutput, scoreVerbose || cfg.Verbose)
}

// loadCLIConfig loads the optional config file, fills unset fields from
// environment-derived defaults, and validates the result.
func loadCLIConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.Config{
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel: embedding.DefaultGeminiModel,
	})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// loadDocument reads an ExtractedDocument from disk. JSON files are
// validated against the extracted_document schema before unmarshalling;
// any other extension is treated as plain text with no structured fields.
func loadDocument(path string) (*types.ExtractedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := schemas.ValidateDocumentFile(path); err != nil {
			return nil, fmt.Errorf("document %s failed schema validation: %w", path, err)
		}
		var doc types.ExtractedDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", path, err)
		}
		return &doc, nil
	}

	return &types.ExtractedDocument{RawText: string(data)}, nil
}

// buildEngine constructs the scoring engine with a cached Gemini
// embedding provider. The returned close function releases the provider.
// The config is expected to have gone through loadCLIConfig, so the API
// key and model defaults are already merged in.
func buildEngine(ctx context.Context, cfg *config.Config) (*scoring.Engine, func() error, error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable or api_key config is required")
	}

	provider, err := embedding.NewGeminiProvider(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}
	cached := embedding.NewCachedProvider(provider)

	engine, err := scoring.NewEngine(cached, cfg.ScoringOptions())
	if err != nil {
		_ = cached.Close()
		return nil, nil, err
	}

	return engine, cached.Close, nil
}

// writeBreakdownJSON writes the breakdown to the output file, or to
// stdout unless the verbose boxes already covered it.
func writeBreakdownJSON(breakdown *types.ScoreBreakdown, outPath string, verbose bool) error {
	jsonOutput, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score breakdown to JSON: %w", err)
	}

	if outPath == "" {
		if !verbose {
			fmt.Println(string(jsonOutput))
		}
		return nil
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write score breakdown to %s: %w", outPath, err)
	}
	return nil
}
