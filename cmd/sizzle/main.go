// Command sizzle runs the full cinematography pipeline over a directory
// of authored scenes: validate, analyze, plan, and write out either a
// dry-run manifest or a render request (spec.md §6.4).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sizzlehq/sizzle/internal/analyzer"
	"github.com/sizzlehq/sizzle/internal/catalog"
	"github.com/sizzlehq/sizzle/internal/evaluator"
	"github.com/sizzlehq/sizzle/internal/manifest"
	"github.com/sizzlehq/sizzle/internal/planner"
	"github.com/sizzlehq/sizzle/internal/scene"
	"github.com/sizzlehq/sizzle/internal/storage"
)

// renderJob is the record the CLI would hand to a downstream renderer.
// Building and executing the render itself is out of scope (spec.md §1
// Non-goals); this type exists so the CLI/renderer boundary has a
// concrete shape.
type renderJob struct {
	Manifest   manifest.Manifest `json:"manifest"`
	OutputPath string            `json:"output_path"`
	StartedAt  time.Time         `json:"started_at"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "sizzle: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sizzle", flag.ExitOnError)
	style := fs.String("style", "", "style pack name (required)")
	output := fs.String("output", "", "output path, local or s3://bucket/key (default: renders/sizzle-<style>-<unix>.mp4, or .json with --dry-run)")
	dryRun := fs.Bool("dry-run", false, "write the sequence manifest as JSON instead of invoking the renderer")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: sizzle <scenes-dir> --style <name> [--output <path>] [--dry-run] [--verbose]")
	}
	scenesDir := fs.Arg(0)
	if *style == "" {
		return fmt.Errorf("--style is required")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	scenes, err := loadScenes(scenesDir)
	if err != nil {
		return fmt.Errorf("loading scenes: %w", err)
	}
	logger.Info("loaded scenes", "count", len(scenes), "dir", scenesDir)

	analyzed := make([]scene.Analyzed, 0, len(scenes))
	for _, s := range scenes {
		result := scene.Validate(s)
		if !result.Valid {
			for _, e := range result.Errors {
				logger.Error("scene validation failed", "scene_id", s.SceneID, "error", e)
			}
			return fmt.Errorf("scene %q failed validation (%d errors)", s.SceneID, len(result.Errors))
		}
		analyzed = append(analyzed, analyzer.Analyze(s, cat))
	}

	sequenceID := fmt.Sprintf("seq_%s", strings.ReplaceAll(*style, "-", "_"))
	res := manifest.Resolution{W: 1920, H: 1080}
	fps := 30

	planResult, err := planner.Plan(analyzed, *style, sequenceID, res, fps, cat)
	if err != nil {
		return fmt.Errorf("planning sequence: %w", err)
	}
	logger.Info("planned sequence",
		"sequence_id", sequenceID,
		"scene_count", planResult.Notes.SceneCount,
		"total_duration_s", planResult.Notes.TotalDurationS,
	)

	startedAt := time.Now()
	ext := "mp4"
	if *dryRun {
		ext = "json"
	}
	dest := *output
	if dest == "" {
		dest = fmt.Sprintf("renders/sizzle-%s-%d.%s", *style, startedAt.Unix(), ext)
	}

	var payload []byte
	if *dryRun {
		payload, err = json.MarshalIndent(map[string]any{
			"manifest": planResult.Manifest,
			"notes":    planResult.Notes,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling manifest: %w", err)
		}
	} else {
		logger.Warn("rendering is not implemented by this CLI; writing a render job descriptor for a downstream renderer to pick up", "output", dest)
		job := renderJob{Manifest: planResult.Manifest, OutputPath: dest, StartedAt: startedAt}
		payload, err = json.MarshalIndent(job, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling render job: %w", err)
		}
	}

	ctx := context.Background()
	if err := storage.Write(ctx, dest, payload); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("wrote output", "output", dest)

	if *verbose {
		report, err := evaluator.Evaluate(planResult.Manifest, analyzed, *style, cat)
		if err != nil {
			return fmt.Errorf("evaluating sequence: %w", err)
		}
		evalPayload, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling evaluation report: %w", err)
		}
		evalDest := strings.TrimSuffix(dest, filepath.Ext(dest)) + ".eval.json"
		if err := storage.Write(ctx, evalDest, evalPayload); err != nil {
			return fmt.Errorf("writing evaluation report: %w", err)
		}
		logger.Info("wrote evaluation report", "output", evalDest)
	}

	return nil
}

// loadScenes reads every *.json file in dir in filename-alphabetical
// order, deriving scene_id from the filename when the scene omits it.
func loadScenes(dir string) ([]scene.Scene, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	scenes := make([]scene.Scene, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var s scene.Scene
		if err := json.Unmarshal(b, &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if s.SceneID == "" {
			s.SceneID = "sc_" + strings.TrimSuffix(name, ".json")
		}
		scenes = append(scenes, s)
	}
	return scenes, nil
}
