package commands

import (
	"fmt"
	"path/filepath"

	"github.com/tobyv/scenesweep/internal/config"
	"github.com/tobyv/scenesweep/internal/selfheal"
)

// Env carries the resolved invocation context shared by all commands
type Env struct {
	Root        string // project root directory
	ProjectPath string // full path to the project file
	Cfg         *config.Config
}

// Setup resolves root/project flags against the optional config file and
// runs the silent per-invocation cleanup.
func Setup(rootFlag, projectFlag string) (*Env, error) {
	root := rootFlag
	if root == "" {
		if projectFlag != "" {
			root = filepath.Dir(projectFlag)
		} else {
			root = "."
		}
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	projectPath := projectFlag
	if projectPath == "" {
		projectPath = filepath.Join(root, cfg.Project)
	} else if !filepath.IsAbs(projectPath) {
		abs, err := filepath.Abs(projectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project path: %w", err)
		}
		projectPath = abs
	}

	selfheal.Run(root, cfg.Keep)

	return &Env{
		Root:        root,
		ProjectPath: projectPath,
		Cfg:         cfg,
	}, nil
}

// projectRel returns the project file path relative to the root, for git
// status checks and display.
func (e *Env) projectRel() string {
	rel, err := filepath.Rel(e.Root, e.ProjectPath)
	if err != nil {
		return e.ProjectPath
	}
	return rel
}
