package github

import (
	"github.com/sethvargo/go-githubactions"
)

// OutputRepositoryImpl maps workflow inputs, outputs and annotations to GitHub Actions.
type OutputRepositoryImpl struct {
	action *githubactions.Action
}

// NewOutputRepository cria o repositório de saídas do workflow.
func NewOutputRepository(opts ...githubactions.Option) *OutputRepositoryImpl {
	return &OutputRepositoryImpl{action: githubactions.New(opts...)}
}

// GetInput reads the INPUT_<NAME> variable set by the runner.
func (r *OutputRepositoryImpl) GetInput(name string) string {
	return r.action.GetInput(name)
}

func (r *OutputRepositoryImpl) SetOutput(name, value string) {
	r.action.SetOutput(name, value)
}

func (r *OutputRepositoryImpl) Errorf(format string, a ...interface{}) {
	r.action.Errorf(format, a...)
}
