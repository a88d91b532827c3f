package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score multiple resumes against one job description",
	Long:  "Scores every resume document in a directory against one job description, printing results sorted by overall score (best first).",
	RunE:  runBatch,
}

var (
	batchResumeDir   string
	batchJob         string
	batchConfig      string
	batchOutput      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchResumeDir, "resume-dir", "r", "", "Directory containing resume documents (required)")
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description document (required)")
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "Path to JSON config file")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to write the batch results JSON to (default: stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum resumes scored in parallel (default 4)")

	if err := batchCmd.MarkFlagRequired("resume-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark resume-dir flag as required: %v", err))
	}
	if err := batchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

// BatchEntry pairs a resume file with its score for ranked output.
type BatchEntry struct {
	Resume    string                `json:"resume"`
	Breakdown *types.ScoreBreakdown `json:"breakdown"`
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadCLIConfig(batchConfig)
	if err != nil {
		return err
	}

	job, err := loadDocument(batchJob)
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	paths, resumes, err := loadResumeDir(batchResumeDir)
	if err != nil {
		return err
	}

	engine, closeProvider, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeProvider() }()

	breakdowns, err := engine.ScoreBatch(ctx, job, resumes, batchConcurrency)
	if err != nil {
		return fmt.Errorf("batch scoring failed: %w", err)
	}

	entries := make([]BatchEntry, len(breakdowns))
	for i, breakdown := range breakdowns {
		entries[i] = BatchEntry{Resume: paths[i], Breakdown: breakdown}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Breakdown.Overall > entries[j].Breakdown.Overall
	})

	jsonOutput, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch results to JSON: %w", err)
	}

	if batchOutput == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}
	if err := os.WriteFile(batchOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write batch results to %s: %w", batchOutput, err)
	}
	return nil
}

// loadResumeDir loads every .json and .txt document in the directory.
func loadResumeDir(dir string) ([]string, []*types.ExtractedDocument, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
	}

	var paths []string
	var resumes []*types.ExtractedDocument
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".txt" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		doc, err := loadDocument(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load resume %s: %w", path, err)
		}
		paths = append(paths, path)
		resumes = append(resumes, doc)
	}

	if len(resumes) == 0 {
		return nil, nil, fmt.Errorf("no resume documents (.json or .txt) found in %s", dir)
	}
	return paths, resumes, nil
}
