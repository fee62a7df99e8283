package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"time"

	"github.com/jmylchreest/tonal/internal/archive"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/plugin/manager"
	"github.com/jmylchreest/tonal/internal/plugin/output"
	"github.com/jmylchreest/tonal/internal/theme"
)

// Hook timeouts.
const (
	preExecuteTimeout  = 5 * time.Second
	postExecuteTimeout = 10 * time.Second
)

type exportOptions struct {
	dryRun bool
	backup bool
}

// pluginExecution tracks one exporter through the run.
type pluginExecution struct {
	plugin       output.Plugin
	skip         bool
	skipReason   string
	failed       bool
	writtenFiles []string
	files        map[string][]byte
}

// exportSummary reports what each exporter did.
type exportSummary struct {
	executions []pluginExecution
	archive    string
	dryRun     bool
}

func (s *exportSummary) succeeded() int {
	n := 0
	for _, e := range s.executions {
		if !e.skip && !e.failed {
			n++
		}
	}
	return n
}

func (s *exportSummary) err() error {
	if len(s.executions) > 0 && s.succeeded() == 0 {
		return errors.New("no exporters succeeded")
	}
	return nil
}

func (s *exportSummary) print(w io.Writer) {
	table := NewTable([]string{"EXPORTER", "STATUS", "FILES"})
	table.SetColumnMaxWidth(1, 48)
	for _, e := range s.executions {
		status := "ok"
		switch {
		case e.failed:
			status = "failed: " + e.skipReason
		case e.skip:
			status = "skipped: " + e.skipReason
		case s.dryRun:
			status = "dry run"
		}
		count := len(e.writtenFiles)
		if s.dryRun {
			count = len(e.files)
		}
		table.AddRow([]string{e.plugin.Name(), status, strconv.Itoa(count)})
	}
	fmt.Fprint(w, table.Render())
	if s.archive != "" {
		fmt.Fprintf(w, "\nArchive: %s\n", s.archive)
	}
}

// selectExporters resolves names to registered exporters. "all" selects
// every exporter that is not disabled.
func (a *app) selectExporters(names []string) ([]output.Plugin, error) {
	current := a.plugins.Config()
	a.plugins.UpdateConfig(manager.Config{
		EnabledPlugins:  names,
		DisabledPlugins: current.DisabledPlugins,
	})
	defer a.plugins.UpdateConfig(current)

	if err := a.plugins.CheckEnabled(); err != nil {
		return nil, err
	}
	plugins := a.plugins.Enabled()
	if len(plugins) == 0 {
		return nil, errors.New("no exporters selected")
	}
	return plugins, nil
}

// templated is implemented by exporters that render user-overridable templates.
type templated interface {
	SetTemplateDir(dir string)
}

type reloader interface {
	SetReload(reload bool)
}

type dryRunner interface {
	SetDryRun(dryRun bool)
}

// configure pushes the run-wide settings into an exporter.
func configure(p output.Plugin, cfg *config.Config, opts exportOptions) {
	if t, ok := p.(templated); ok && cfg.TemplateDir != "" {
		t.SetTemplateDir(cfg.TemplateDir)
	}
	if r, ok := p.(reloader); ok && cfg.Reload {
		r.SetReload(true)
	}
	if d, ok := p.(dryRunner); ok {
		d.SetDryRun(opts.dryRun)
	}
}

// export runs the selected exporters: validate and pre-hook, generate,
// write, post-hook, then archive everything written.
func (a *app) export(ctx context.Context, th *theme.Theme, cfg *config.Config, opts exportOptions) (*exportSummary, error) {
	plugins, err := a.selectExporters(cfg.Exporters)
	if err != nil {
		return nil, err
	}

	summary := &exportSummary{dryRun: opts.dryRun}
	summary.executions = a.preparePluginExecutions(ctx, plugins, cfg, opts)

	for i := range summary.executions {
		a.processPluginGeneration(&summary.executions[i], th, cfg, opts)
	}

	if !opts.dryRun {
		a.runPostExecutionHooks(ctx, summary.executions)
	}

	if cfg.Archive != "" {
		if err := a.writeArchive(cfg.Archive, summary.executions, opts.dryRun); err != nil {
			return summary, err
		}
		summary.archive = cfg.Archive
	}
	return summary, nil
}

// preparePluginExecutions validates exporters and runs pre-execute hooks.
func (a *app) preparePluginExecutions(ctx context.Context, plugins []output.Plugin, cfg *config.Config, opts exportOptions) []pluginExecution {
	executions := make([]pluginExecution, 0, len(plugins))
	for _, p := range plugins {
		exec := pluginExecution{plugin: p}
		configure(p, cfg, opts)

		if err := p.Validate(); err != nil {
			a.logger.Warn("skipping exporter", "exporter", p.Name(), "error", err)
			exec.failed = true
			exec.skipReason = fmt.Sprintf("validation failed: %v", err)
		} else {
			a.runPreHook(ctx, &exec)
		}
		executions = append(executions, exec)
	}
	return executions
}

func (a *app) runPreHook(ctx context.Context, exec *pluginExecution) {
	preHook, ok := exec.plugin.(output.PreExecuteHook)
	if !ok {
		return
	}

	hookCtx, cancel := context.WithTimeout(ctx, preExecuteTimeout)
	skip, reason, err := preHook.PreExecute(hookCtx)
	cancel()

	switch {
	case err != nil:
		a.logger.Error("pre-execution check failed", "exporter", exec.plugin.Name(), "error", err)
		exec.failed = true
		exec.skipReason = fmt.Sprintf("pre-hook error: %v", err)
	case skip:
		a.logger.Info("skipping exporter", "exporter", exec.plugin.Name(), "reason", reason)
		exec.skip = true
		exec.skipReason = reason
	}
}

// processPluginGeneration generates and writes the files of one exporter.
func (a *app) processPluginGeneration(exec *pluginExecution, th *theme.Theme, cfg *config.Config, opts exportOptions) {
	if exec.skip || exec.failed {
		return
	}
	p := exec.plugin
	a.logger.Debug("running exporter", "exporter", p.Name(), "description", p.Description())

	files, err := p.Generate(th)
	if err != nil {
		a.logger.Error("exporter failed", "exporter", p.Name(), "error", err)
		exec.failed = true
		exec.skipReason = fmt.Sprintf("generation failed: %v", err)
		return
	}
	exec.files = files

	dir := p.DefaultOutputDir()
	if dir == "" {
		dir = cfg.OutputDir
	}
	written, err := output.WriteFiles(dir, files, output.WriteOptions{
		DryRun: opts.dryRun,
		Backup: opts.backup,
		Logger: a.logger.Named(p.Name()),
	})
	exec.writtenFiles = written
	if err != nil {
		a.logger.Error("failed to write files", "exporter", p.Name(), "error", err)
		exec.failed = true
		exec.skipReason = fmt.Sprintf("write failed: %v", err)
	}
}

// runPostExecutionHooks runs post-execute hooks for exporters that wrote files.
func (a *app) runPostExecutionHooks(ctx context.Context, executions []pluginExecution) {
	for _, exec := range executions {
		if exec.skip || exec.failed {
			continue
		}
		postHook, ok := exec.plugin.(output.PostExecuteHook)
		if !ok {
			continue
		}

		a.logger.Debug("running post-hook", "exporter", exec.plugin.Name())
		hookCtx, cancel := context.WithTimeout(ctx, postExecuteTimeout)
		err := postHook.PostExecute(hookCtx, exec.writtenFiles)
		cancel()
		if err != nil {
			a.logger.Warn("post-hook failed", "exporter", exec.plugin.Name(), "error", err)
		}
	}
}

// writeArchive bundles the generated files as <exporter>/<file> entries.
func (a *app) writeArchive(filename string, executions []pluginExecution, dryRun bool) error {
	files := make(map[string][]byte)
	for _, exec := range executions {
		for name, content := range exec.files {
			files[path.Join(exec.plugin.Name(), name)] = content
		}
	}
	if len(files) == 0 {
		return nil
	}
	if dryRun {
		a.logger.Info("would write archive", "path", filename, "files", len(files))
		return nil
	}
	if err := archive.WriteFile(filename, files, time.Now()); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	a.logger.Info("wrote archive", "path", filename, "files", len(files))
	return nil
}
