package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mgpai22/ttml2srt/internal/subtitle"
	"github.com/mgpai22/ttml2srt/internal/ttml"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var convertCmd = &cobra.Command{
	Use:   "convert [ttml_file...]",
	Short: "Convert TTML documents to subtitle files",
	Long: `Convert one or more TTML/DFXP documents into subtitle files.

Accepted source extensions are .ttml, .xml and .dfxp. By default the output
is written next to the source with the extension of the selected format.
Several sources are converted in parallel; a failing file does not stop
the others.

Examples:
  ttml2srt convert episode.ttml
  ttml2srt convert episode.dfxp -o subs/episode.srt
  ttml2srt convert *.ttml --format vtt --concurrency 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt, ass)")
	convertCmd.Flags().
		StringP("output", "o", "", "Output file path (single source only)")
	convertCmd.Flags().
		Int("concurrency", 4, "Number of documents converted in parallel")
	convertCmd.Flags().
		Bool("overwrite", false, "Replace existing output files")
}

// same bounds as the concurrency key of the configuration
const (
	minConcurrency = 1
	maxConcurrency = 64
)

var sourceExtensions = map[string]bool{
	".ttml": true,
	".xml":  true,
	".dfxp": true,
}

// one source document and where its subtitles go
type convertJob struct {
	Index  int
	Input  string
	Output string
}

type convertResult struct {
	Job     convertJob
	Entries int
	Error   error
}

func runConvert(cmd *cobra.Command, args []string) error {
	formatStr := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		formatStr, _ = cmd.Flags().GetString("format")
	}
	concurrency := cfg.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency, _ = cmd.Flags().GetInt("concurrency")
	}
	overwrite := cfg.Output.Overwrite
	if cmd.Flags().Changed("overwrite") {
		overwrite, _ = cmd.Flags().GetBool("overwrite")
	}
	outputPath, _ := cmd.Flags().GetString("output")

	if err := validateConcurrency(concurrency); err != nil {
		return err
	}

	format, ok := subtitle.ParseFormat(formatStr)
	if !ok {
		return fmt.Errorf("unsupported format %q: use srt, vtt, or ass", formatStr)
	}
	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output can only be used with a single source")
	}

	jobs := make([]convertJob, len(args))
	for i, input := range args {
		if err := validateSource(input); err != nil {
			return err
		}
		output := outputPath
		if output == "" {
			output = deriveOutputPath(input, format)
		}
		jobs[i] = convertJob{Index: i, Input: input, Output: output}
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return fmt.Errorf("failed to create subtitle writer: %w", err)
	}

	logger.Infow("Starting conversion",
		"sources", len(jobs),
		"format", format,
		"concurrency", concurrency,
	)

	converter := ttml.NewConverter(logger.Desugar())
	results := convertAll(jobs, concurrency, func(job convertJob) (int, error) {
		return convertFile(converter, writer, job, overwrite)
	})

	var errs error
	for _, r := range results {
		if r.Error != nil {
			logger.Errorw("Conversion failed",
				"input", r.Job.Input,
				"error", r.Error,
			)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.Job.Input, r.Error))
			continue
		}
		absOutput, _ := filepath.Abs(r.Job.Output)
		fmt.Printf("Subtitles written: %s\n", absOutput)
		fmt.Printf("  Entries: %d\n", r.Entries)
	}
	return errs
}

func validateSource(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !sourceExtensions[ext] {
		return fmt.Errorf(
			"unsupported source %q: use .ttml, .xml, or .dfxp",
			path,
		)
	}
	return nil
}

func validateConcurrency(n int) error {
	if n < minConcurrency || n > maxConcurrency {
		return fmt.Errorf(
			"concurrency %d out of range: use %d to %d",
			n, minConcurrency, maxConcurrency,
		)
	}
	return nil
}

func deriveOutputPath(input string, format subtitle.Format) string {
	baseName := strings.TrimSuffix(input, filepath.Ext(input))
	return baseName + subtitle.GetExtensionForFormat(format)
}

func convertFile(
	converter *ttml.Converter,
	writer subtitle.Writer,
	job convertJob,
	overwrite bool,
) (int, error) {
	if !overwrite {
		if _, err := os.Stat(job.Output); err == nil {
			return 0, fmt.Errorf("output already exists: %s (use --overwrite)", job.Output)
		}
	}

	src, err := os.ReadFile(job.Input)
	if err != nil {
		return 0, fmt.Errorf("failed to read source: %w", err)
	}

	sub, err := converter.Convert(src)
	if err != nil {
		return 0, fmt.Errorf("conversion failed: %w", err)
	}

	if err := writer.Write(sub, job.Output); err != nil {
		return 0, fmt.Errorf("failed to write subtitles: %w", err)
	}
	return len(sub.Entries), nil
}

// runs fn over jobs with a bounded number of workers, results keep job order
func convertAll(
	jobs []convertJob,
	concurrency int,
	fn func(convertJob) (int, error),
) []convertResult {
	if concurrency <= 0 {
		concurrency = 1
	}

	workChan := make(chan convertJob, len(jobs))
	resultChan := make(chan convertResult, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Go(func() {
			for job := range workChan {
				entries, err := fn(job)
				resultChan <- convertResult{
					Job:     job,
					Entries: entries,
					Error:   err,
				}
			}
		})
	}

	for _, job := range jobs {
		workChan <- job
	}
	close(workChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]convertResult, 0, len(jobs))
	for result := range resultChan {
		results = append(results, result)
	}

	// sort by index to maintain order
	sort.Slice(results, func(i, j int) bool {
		return results[i].Job.Index < results[j].Job.Index
	})
	return results
}
