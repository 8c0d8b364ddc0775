package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-importer/internal/config"
	"github.com/jonathan/resume-importer/internal/observability"
	"github.com/jonathan/resume-importer/internal/pipeline"
	"github.com/jonathan/resume-importer/internal/types"
	"github.com/jonathan/resume-importer/internal/upload"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <files...>",
	Short: "Parse resume files into structured resume data",
	Long:  "Parse one or more PDF or Word resume files into structured resume data with per-field confidence scores.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseStrict     bool
	parseIncludeRaw bool
	parseThreshold  float64
	parseJSON       bool
	parseVerbose    bool
	parseConfigPath string
)

func init() {
	registerParseFlags(parseCmd)
	rootCmd.AddCommand(parseCmd)
}

func registerParseFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&parseStrict, "strict", false, "Treat field errors as fatal")
	cmd.Flags().BoolVar(&parseIncludeRaw, "include-raw-text", false, "Attach extracted raw text to results")
	cmd.Flags().Float64Var(&parseThreshold, "threshold", types.DefaultConfidenceThreshold, "Minimum confidence for success (0.0-1.0)")
	cmd.Flags().BoolVar(&parseJSON, "json", false, "Print results as JSON")
	cmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed parse information")
	cmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON config file")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParseConfig(cmd)
	if err != nil {
		return err
	}

	opts := types.DefaultParseOptions()
	opts.StrictValidation = cfg.StrictValidation
	opts.IncludeRawText = cfg.IncludeRawText
	opts.ConfidenceThreshold = cfg.ConfidenceThreshold
	if len(cfg.SectionMapping) > 0 {
		opts.SectionMapping = make(map[string]types.SectionType, len(cfg.SectionMapping))
		for heading, sectionType := range cfg.SectionMapping {
			opts.SectionMapping[heading] = types.SectionType(sectionType)
		}
	}
	verbose := cfg.Verbose

	if err := opts.Validate(); err != nil {
		return err
	}

	uploads := make([]types.FileUpload, 0, len(args))
	for _, path := range args {
		file, err := loadUpload(path)
		if err != nil {
			return err
		}
		uploads = append(uploads, file)
	}

	parser := pipeline.NewDefault()

	var results []types.ParseResult
	if len(uploads) == 1 {
		results = []types.ParseResult{parser.ParseResume(context.Background(), uploads[0], opts)}
	} else {
		results = parser.ParseMultipleResumes(context.Background(), uploads, opts)
	}

	if parseJSON {
		if err := json.NewEncoder(os.Stdout).Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		printer := observability.NewPrinter(os.Stdout)
		for i, result := range results {
			printer.PrintParseResult(uploads[i].Filename, result)
			if verbose {
				printer.PrintStats(parser.Stats(result))
			}
		}
	}

	failed := 0
	for _, result := range results {
		if !result.Success {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
	}
	return nil
}

// resolveParseConfig builds the effective configuration: config file values
// first, explicit flags override them, defaults fill whatever remains unset.
func resolveParseConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if parseConfigPath != "" {
		loaded, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("strict") {
		cfg.StrictValidation = parseStrict
	}
	if cmd.Flags().Changed("include-raw-text") {
		cfg.IncludeRawText = parseIncludeRaw
	}
	if cmd.Flags().Changed("threshold") {
		cfg.ConfidenceThreshold = parseThreshold
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}

	merged := cfg.MergeWithDefaults(config.Config{
		ConfidenceThreshold: types.DefaultConfidenceThreshold,
	})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// loadUpload reads a file from disk into a FileUpload, guessing the mimetype
// from the extension.
func loadUpload(path string) (types.FileUpload, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return types.FileUpload{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return types.FileUpload{
		Filename: filepath.Base(path),
		Mimetype: mimetypeForExtension(path),
		Buffer:   buf,
		Size:     int64(len(buf)),
	}, nil
}

// mimetypeForExtension maps a file extension to its upload mimetype. Unknown
// extensions pass through empty and are rejected by the file validator.
func mimetypeForExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return upload.MimetypePDF
	case ".docx":
		return upload.MimetypeDocx
	case ".doc":
		return upload.MimetypeDoc
	default:
		return ""
	}
}
