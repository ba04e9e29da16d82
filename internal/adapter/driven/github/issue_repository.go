package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/azure-finops-report-go/internal/shared/types"
	gh "github.com/google/go-github/v66/github"
)

// IssueRepositoryImpl publica o relatório como uma issue do GitHub.
type IssueRepositoryImpl struct {
	client *gh.Client
	owner  string
	repo   string
}

// NewIssueRepository cria o repositório de issues para "owner/name".
func NewIssueRepository(token, repository string) (*IssueRepositoryImpl, error) {
	if token == "" {
		return nil, types.ErrMissingIssueToken
	}
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("%w: got %q", types.ErrMissingRepository, repository)
	}

	return &IssueRepositoryImpl{
		client: gh.NewClient(nil).WithAuthToken(token),
		owner:  owner,
		repo:   name,
	}, nil
}

// PublishClosed creates the issue and closes it immediately, keeping it as a record.
func (r *IssueRepositoryImpl) PublishClosed(ctx context.Context, title, body string) (string, error) {
	issue, _, err := r.client.Issues.Create(ctx, r.owner, r.repo, &gh.IssueRequest{
		Title: gh.String(title),
		Body:  gh.String(body),
	})
	if err != nil {
		return "", fmt.Errorf("error creating issue in %s/%s: %w", r.owner, r.repo, err)
	}

	_, _, err = r.client.Issues.Edit(ctx, r.owner, r.repo, issue.GetNumber(), &gh.IssueRequest{
		State: gh.String("closed"),
	})
	if err != nil {
		return issue.GetHTMLURL(), fmt.Errorf("error closing issue #%d: %w", issue.GetNumber(), err)
	}

	return issue.GetHTMLURL(), nil
}
