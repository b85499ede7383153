/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hexkit/hexgen/errors"
)

// File and directory permissions for generated output.
const (
	filePermReadWrite    = 0o644
	dirPermReadWriteExec = 0o755
)

// CommitOptions controls how an artifact set is committed.
type CommitOptions struct {
	// DryRun reports intended writes without touching the file system.
	DryRun bool

	// Force overwrites pre-existing files instead of reporting conflicts.
	Force bool
}

// CommitReport summarizes one commit: which paths were created or
// overwritten, which conflicted with existing files, and which were only
// planned (dry-run).
type CommitReport struct {
	Created     []string
	Overwritten []string
	Conflicts   []string
	Planned     []string
}

// HasConflicts reports whether any artifact was refused because its path
// already existed.
func (r *CommitReport) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Committer takes a generated artifact set and either writes it to a file
// tree or reports it without writing. Implementations must refuse to
// silently overwrite pre-existing files.
type Committer interface {
	Commit(ctx context.Context, artifacts []Artifact, opts CommitOptions) (*CommitReport, error)
}

// FSCommitter commits artifacts directly to the local file system.
type FSCommitter struct{}

// NewFSCommitter creates a file system committer.
func NewFSCommitter() *FSCommitter {
	return &FSCommitter{}
}

// Commit writes each artifact in order, creating parent directories as
// needed. A pre-existing file is recorded as a conflict and skipped unless
// Force is set; artifacts already written in the same run are not rolled
// back. In dry-run mode nothing is written and every artifact is recorded
// as planned, with conflicts still detected so the user sees them before a
// real run.
func (c *FSCommitter) Commit(ctx context.Context, artifacts []Artifact, opts CommitOptions) (*CommitReport, error) {
	report := &CommitReport{}

	for _, artifact := range artifacts {
		exists := fileExists(artifact.Path)

		if opts.DryRun {
			if exists && !opts.Force {
				report.Conflicts = append(report.Conflicts, artifact.Path)
				continue
			}
			report.Planned = append(report.Planned, artifact.Path)
			continue
		}

		if exists && !opts.Force {
			report.Conflicts = append(report.Conflicts, artifact.Path)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(artifact.Path), dirPermReadWriteExec); err != nil {
			return report, errors.Wrap("create output directory", filepath.Dir(artifact.Path), err)
		}
		if err := os.WriteFile(artifact.Path, []byte(artifact.Content), filePermReadWrite); err != nil {
			return report, errors.Wrap("write artifact", artifact.Path, err)
		}

		if exists {
			report.Overwritten = append(report.Overwritten, artifact.Path)
		} else {
			report.Created = append(report.Created, artifact.Path)
		}
	}

	return report, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
