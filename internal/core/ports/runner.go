package ports

import (
	"context"
	"io"

	"go.trai.ch/winebuild/internal/core/domain"
)

// ScriptRunner executes external collaborator scripts.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ScriptRunner interface {
	// Run invokes the step's script with the given environment, streaming its
	// output to stdout and stderr. Relative script paths resolve against
	// root, which is also the script's working directory. env entries are
	// "KEY=VALUE" strings laid over the process environment.
	//
	// It returns an error carrying the exit code if the script fails.
	Run(ctx context.Context, step *domain.Step, root string, env []string, stdout, stderr io.Writer) error
}
