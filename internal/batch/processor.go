// Package batch converts a directory of MT and MX files with a bounded pool
// of workers and summarizes the outcome in a CSV report.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fjacquet/swift-mx/internal/fileutils"
	"fjacquet/swift-mx/internal/logging"
	"fjacquet/swift-mx/internal/parsererror"
	"fjacquet/swift-mx/pkg/converter"
)

// Input extensions recognised for each notation, next to the configured
// output extensions.
var (
	MtInputExtensions = []string{".fin", ".mt", ".txt"}
	MxInputExtensions = []string{".xml"}
)

// Converter is the part of converter.Service the processor needs.
type Converter interface {
	MtToMx(mtText, typeHint string) (*converter.Result, error)
	MxToMt(mxText, typeHint string) (*converter.Result, error)
}

// Job is one file to convert.
type Job struct {
	InputPath  string
	OutputPath string
	Direction  string
}

// Options configures a Processor. Zero values select the defaults.
type Options struct {
	Workers     int
	MtExtension string
	MxExtension string
	TypeHint    string
}

// Processor fans jobs out to workers. Each worker calls the stateless
// converter, so a single Processor can run several batches.
type Processor struct {
	logger      logging.Logger
	conv        Converter
	workers     int
	mtExtension string
	mxExtension string
	typeHint    string
}

// NewProcessor creates a Processor. A nil logger selects the default adapter.
func NewProcessor(conv Converter, logger logging.Logger, opts Options) *Processor {
	p := &Processor{
		logger:      logging.OrDefault(logger),
		conv:        conv,
		workers:     opts.Workers,
		mtExtension: opts.MtExtension,
		mxExtension: opts.MxExtension,
		typeHint:    opts.TypeHint,
	}
	if p.workers < 1 {
		p.workers = 1
	}
	if p.mtExtension == "" {
		p.mtExtension = ".fin"
	}
	if p.mxExtension == "" {
		p.mxExtension = ".xml"
	}
	return p
}

// Workers returns the size of the worker pool.
func (p *Processor) Workers() int {
	return p.workers
}

// PlanJobs lists the convertible files in inputDir, sorted by name. MT files
// become MX files in outputDir and MX files become MT files.
func (p *Processor) PlanJobs(inputDir, outputDir string) ([]Job, error) {
	mtInputs := append(append([]string{}, MtInputExtensions...), p.mtExtension)
	mxInputs := append(append([]string{}, MxInputExtensions...), p.mxExtension)

	files, err := fileutils.ListFiles(inputDir, append(append([]string{}, mtInputs...), mxInputs...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	jobs := make([]Job, 0, len(files))
	for _, file := range files {
		job := Job{InputPath: file}
		if fileutils.HasExtension(file, mxInputs...) {
			job.Direction = converter.DirectionMxToMt
			job.OutputPath = fileutils.ReplaceExtension(file, outputDir, p.mtExtension)
		} else {
			job.Direction = converter.DirectionMtToMx
			job.OutputPath = fileutils.ReplaceExtension(file, outputDir, p.mxExtension)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

type indexedJob struct {
	index int
	job   Job
}

// Run converts jobs and returns one report row per job, in the order of
// jobs. When ctx is cancelled, jobs not yet started are reported as
// cancelled and ctx.Err() is returned alongside the rows.
func (p *Processor) Run(ctx context.Context, jobs []Job) ([]ReportRow, error) {
	rows := make([]ReportRow, len(jobs))
	started := make([]bool, len(jobs))
	if len(jobs) == 0 {
		return rows, nil
	}

	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobChan := make(chan indexedJob, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobChan {
				rows[item.index] = p.convertFile(item.job)
			}
		}()
	}

	go func() {
		defer close(jobChan)
		for i, job := range jobs {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobChan <- indexedJob{index: i, job: job}:
				started[i] = true
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	for i, job := range jobs {
		if !started[i] {
			rows[i] = ReportRow{
				InputFile:  job.InputPath,
				OutputFile: job.OutputPath,
				Direction:  job.Direction,
				Status:     StatusCancelled,
			}
		}
	}

	p.logger.Debug("Batch run completed",
		logging.Field{Key: logging.FieldCount, Value: len(jobs)},
		logging.Field{Key: logging.FieldWorkers, Value: workers})

	return rows, ctx.Err()
}

// convertFile converts one file and writes its output. Failures are recorded
// in the row, never returned, so that one bad file does not stop the batch.
func (p *Processor) convertFile(job Job) ReportRow {
	start := time.Now()
	row := ReportRow{InputFile: job.InputPath, OutputFile: job.OutputPath, Direction: job.Direction}
	logger := p.logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: filepath.Base(job.InputPath)},
		logging.Field{Key: logging.FieldDirection, Value: job.Direction})

	fail := func(err error) ReportRow {
		row.Status = StatusFailed
		row.Error = err.Error()
		row.DurationMs = time.Since(start).Milliseconds()
		logger.WithError(err).Error("Failed to convert file",
			logging.Field{Key: logging.FieldStatus, Value: row.Status})
		return row
	}

	content, err := fileutils.ReadFile(job.InputPath)
	if err != nil {
		return fail(err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return fail(&parsererror.ValidationError{FilePath: job.InputPath, Reason: "file is empty"})
	}

	var result *converter.Result
	if job.Direction == converter.DirectionMxToMt {
		result, err = p.conv.MxToMt(string(content), "")
	} else {
		result, err = p.conv.MtToMx(string(content), p.typeHint)
	}
	if err != nil {
		return fail(err)
	}

	if err := fileutils.WriteFile(job.OutputPath, []byte(result.Output), 0600); err != nil {
		return fail(err)
	}

	row.SourceType = result.SourceType
	row.TargetType = result.TargetType
	row.Advisories = len(result.Advisories)
	row.AdvisoryText = joinAdvisories(result.Advisories)
	row.Status = StatusConverted
	row.DurationMs = time.Since(start).Milliseconds()

	logging.LogAdvisories(logger, result.SourceType, result.Advisories)
	logger.Info("Converted file",
		logging.Field{Key: logging.FieldStatus, Value: row.Status},
		logging.Field{Key: logging.FieldOutputFile, Value: filepath.Base(job.OutputPath)},
		logging.Field{Key: logging.FieldTargetType, Value: result.TargetType},
		logging.Field{Key: logging.FieldDuration, Value: row.DurationMs})
	return row
}
