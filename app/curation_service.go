package app

import (
	"context"
	"time"

	"chromacull/domain/color"
	"chromacull/domain/curation"
	"chromacull/internal"
	"chromacull/internal/dedupe"
	"chromacull/internal/errors"
	"chromacull/internal/extract"
	"chromacull/internal/inference"
	"chromacull/internal/prune"
	"chromacull/ports"

	"github.com/google/uuid"
)

// CurationService orchestrates the full ingestion pipeline: format
// inference, record extraction, semantic deduplication, and quality pruning.
// Stages run synchronously; the context is checked between stages so a
// caller can cancel a long batch.
type CurationService struct {
	inferencer   *inference.Engine
	deduplicator *dedupe.Deduplicator
	pruner       *prune.Pruner
	logger       *internal.Logger
}

// CurationRequest defines inputs for one pipeline run
type CurationRequest struct {
	TargetSize int
	Priority   []color.Record
	Options    *prune.Options
	Progress   ports.ProgressFunc
}

// CurationResult contains the curated dataset with its audit trail
type CurationResult struct {
	RunID        string
	TopCandidate curation.StructureCandidate
	Candidates   []curation.StructureCandidate
	Records      []color.Record
	Groups       []curation.DuplicateGroup
	DedupeStats  curation.DedupeStats
	PruneStats   curation.PruneStats
	StageMs      map[string]int64
	RuntimeMs    int64
}

// NewCurationService creates a curation service
func NewCurationService(semantics ports.NameSemanticsPort, logger *internal.Logger) *CurationService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	logger = logger.WithStage("curation")
	return &CurationService{
		inferencer:   inference.NewEngine(),
		deduplicator: dedupe.NewDeduplicator(semantics),
		pruner:       prune.NewPruner(),
		logger:       logger,
	}
}

// Curate runs the pipeline over an already-deserialized raw value. Dirty
// individual records degrade rather than abort; the only hard failures are
// context cancellation and input from which no record at all can be
// extracted. Pruning is skipped when TargetSize is non-positive or at least
// the deduplicated size.
func (s *CurationService) Curate(ctx context.Context, raw interface{}, req CurationRequest) (*CurationResult, error) {
	startTime := time.Now()
	result := &CurationResult{
		RunID:   uuid.NewString(),
		StageMs: make(map[string]int64),
	}
	progress := req.Progress
	if progress == nil {
		progress = func(float64, string) {}
	}

	// Stage 1: structural inference
	stageStart := time.Now()
	result.Candidates = s.inferencer.Infer(ctx, raw)
	result.TopCandidate = result.Candidates[0]
	result.StageMs["infer"] = time.Since(stageStart).Milliseconds()
	s.logger.Info("inferred structure %s (confidence %.2f)", result.TopCandidate.Type, result.TopCandidate.Confidence)
	progress(20, "structure inferred")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: record extraction
	stageStart = time.Now()
	result.Records = extract.Records(result.TopCandidate, raw)
	result.StageMs["extract"] = time.Since(stageStart).Milliseconds()
	if len(result.Records) == 0 {
		return nil, errors.InvalidInput("no color records could be extracted from input")
	}
	s.logger.Info("extracted %d records", len(result.Records))
	progress(45, "records extracted")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: semantic deduplication
	stageStart = time.Now()
	dedupResult := s.deduplicator.Deduplicate(result.Records, req.Priority)
	result.Records = dedupResult.Colors
	result.Groups = dedupResult.Groups
	result.DedupeStats = dedupResult.Stats
	result.StageMs["dedupe"] = time.Since(stageStart).Milliseconds()
	s.logger.Info("deduplicated %d -> %d records (%d groups)",
		dedupResult.Stats.InputCount, dedupResult.Stats.OutputCount, len(dedupResult.Groups))
	progress(70, "duplicates removed")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: quality pruning
	stageStart = time.Now()
	if req.TargetSize > 0 && req.TargetSize < len(result.Records) {
		opts := s.pruneOptions(req, result.Records)
		pruneResult := s.pruner.Prune(result.Records, req.TargetSize, opts, s.logger)
		result.Records = pruneResult.Data
		result.PruneStats = pruneResult.Stats
		s.logger.Info("pruned to %d records (%d families kept)",
			pruneResult.Stats.KeptCount, pruneResult.Stats.FamiliesKept)
	} else {
		result.PruneStats = curation.PruneStats{
			InputCount: len(result.Records),
			KeptCount:  len(result.Records),
		}
		if req.TargetSize >= len(result.Records) && req.TargetSize > 0 {
			result.PruneStats.Warnings = []string{"target size at or above dataset size, pruning skipped"}
		}
		s.logger.Debug("pruning skipped (target %d, records %d)", req.TargetSize, len(result.Records))
	}
	result.StageMs["prune"] = time.Since(stageStart).Milliseconds()
	progress(100, "curation complete")

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	return result, nil
}

func (s *CurationService) pruneOptions(req CurationRequest, records []color.Record) prune.Options {
	if req.Options != nil {
		return *req.Options
	}
	families := make(map[color.FamilyTag]bool)
	for _, c := range records {
		families[c.Family] = true
	}
	return prune.DefaultOptions(len(families))
}

// Report re-runs deduplication over freshly extracted records and renders
// the markdown duplicate-analysis report.
func (s *CurationService) Report(ctx context.Context, raw interface{}, priority []color.Record) (string, error) {
	candidates := s.inferencer.Infer(ctx, raw)
	records := extract.Records(candidates[0], raw)
	if len(records) == 0 {
		return "", errors.InvalidInput("no color records could be extracted from input")
	}
	return s.deduplicator.GenerateReport(records, priority), nil
}
