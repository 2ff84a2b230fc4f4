package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/relpub/relpub/internal/infra/journal"
	"github.com/relpub/relpub/internal/infra/repository"
	"github.com/relpub/relpub/internal/interface/external/gitcli"
)

// Request describes one publish run.
type Request struct {
	Version         string
	Branch          string
	TagPrefix       string
	MetaPath        string
	PropertiesPaths []string
	DryRun          bool
}

// Result reports where a run ended. State is the step that was executing
// when the run stopped; StateDone means the full sequence completed. Tag is
// set once StateResolveTag succeeds.
type Result struct {
	RunID string
	Tag   string
	State State
}

// Orchestrator drives the publish sequence. The run is linear and
// non-transactional: a failure aborts without attempting later states and
// without rolling back completed ones, mirroring git semantics where commits
// and pushes cannot be cleanly undone. Dry-run mode executes every check but
// replaces each mutating action with a log of what it would have done.
type Orchestrator struct {
	Git     gitcli.Runner
	Fs      afero.Fs
	Store   *repository.MetadataStore
	Journal *journal.Writer // optional
	Log     func(format string, args ...interface{})
	Now     func() time.Time
}

func NewOrchestrator(git gitcli.Runner, fsys afero.Fs, store *repository.MetadataStore) *Orchestrator {
	return &Orchestrator{
		Git:   git,
		Fs:    fsys,
		Store: store,
		Log:   func(format string, args ...interface{}) { fmt.Printf(format+"\n", args...) },
		Now:   time.Now,
	}
}

func (o *Orchestrator) logf(format string, args ...interface{}) {
	if o.Log != nil {
		o.Log(format, args...)
	}
}

// Run executes the publish sequence for req. The returned Result is valid
// even on error and names the exact state that failed.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	res := Result{RunID: journal.NewRunID(), State: StateStart}
	err := o.run(ctx, req, &res)
	o.record(req, res, err)
	return res, err
}

func (o *Orchestrator) run(ctx context.Context, req Request, res *Result) error {
	guard := &Guard{Git: o.Git}
	o.logf("publishing release %s to branch %s", req.Version, req.Branch)

	var root string

	steps := []struct {
		state State
		fn    func(context.Context) error
	}{
		{StateResolveRoot, func(ctx context.Context) error {
			r, err := guard.RepoRoot(ctx)
			root = r
			return err
		}},
		{StateVerifyBranch, func(ctx context.Context) error {
			return guard.OnBranch(ctx, root, req.Branch)
		}},
		{StateVerifyClean, func(ctx context.Context) error {
			return guard.WorkingTreeClean(ctx, root)
		}},
		{StateVerifySynced, func(ctx context.Context) error {
			return guard.RemoteSynced(ctx, root, req.Branch, req.DryRun)
		}},
		{StateResolveTag, func(ctx context.Context) error {
			tag, err := guard.TagAvailable(ctx, root, req.Version, req.TagPrefix, req.DryRun)
			res.Tag = tag
			return err
		}},
		{StateMutateMetadata, func(ctx context.Context) error {
			return o.mutateMetadata(req, res.Tag)
		}},
		{StateStageFiles, func(ctx context.Context) error {
			o.logf("staging changes")
			args := append([]string{"add", "--"}, req.PropertiesPaths...)
			args = append(args, req.MetaPath)
			return o.Git.Run(ctx, root, req.DryRun, args...)
		}},
		{StateCommit, func(ctx context.Context) error {
			o.logf("committing changes")
			return o.Git.Run(ctx, root, req.DryRun, "commit", "-m", "release: "+req.Version)
		}},
		{StatePush, func(ctx context.Context) error {
			o.logf("pushing changes")
			return o.Git.Run(ctx, root, req.DryRun, "push", "origin", req.Branch)
		}},
		{StateCreateTag, func(ctx context.Context) error {
			o.logf("tagging release")
			return o.Git.Run(ctx, root, req.DryRun, "tag", "-a", res.Tag, "-m", "Release "+req.Version)
		}},
		{StatePushTag, func(ctx context.Context) error {
			o.logf("pushing tag")
			return o.Git.Run(ctx, root, req.DryRun, "push", "origin", res.Tag)
		}},
	}

	for _, step := range steps {
		res.State = step.state
		if err := step.fn(ctx); err != nil {
			return err
		}
	}

	res.State = StateDone
	o.logf("done, CI should detect tag %s", res.Tag)
	return nil
}

// mutateMetadata updates the properties mirrors and appends the release
// entry. In dry-run mode the duplicate check still fires but nothing is
// written.
func (o *Orchestrator) mutateMetadata(req Request, tag string) error {
	o.logf("updating project properties")
	for _, p := range req.PropertiesPaths {
		if err := repository.UpdateProperty(o.Fs, p, repository.VersionPropertyKey, req.Version, req.DryRun); err != nil {
			return fmt.Errorf("failed to update %s: %w", p, err)
		}
		o.logf("updated %s", p)
	}

	o.logf("updating package metadata")
	date := o.Now().Format(time.RFC3339)
	if err := o.Store.RecordRelease(req.MetaPath, req.Version, tag, date, req.DryRun); err != nil {
		return err
	}
	o.logf("updated %s", req.MetaPath)
	return nil
}

// record appends the run outcome to the journal. Dry-run writes nothing, the
// journal included.
func (o *Orchestrator) record(req Request, res Result, runErr error) {
	if o.Journal == nil || req.DryRun {
		return
	}
	rec := journal.Record{
		RunID:   res.RunID,
		Ts:      o.Now().Format(time.RFC3339),
		Version: req.Version,
		Tag:     res.Tag,
		Branch:  req.Branch,
		State:   res.State.String(),
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	if err := o.Journal.Append(rec); err != nil {
		o.logf("WARN: failed to append journal record: %v", err)
	}
}
