package git

import (
	"strings"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
)

// Commit is the HEAD commit summary of a repository.
type Commit struct {
	Hash    string
	Subject string
}

// String renders the commit as "<hash> <subject>".
func (c Commit) String() string {
	if c.Subject == "" {
		return c.Hash
	}
	return c.Hash + " " + c.Subject
}

// Lookup resolves the last commit of the repository containing a directory.
type Lookup interface {
	LastCommit(dir string) (Commit, error)
}

// HeadLookup implements Lookup with go-git.
type HeadLookup struct{}

// LastCommit returns the commit HEAD points at for the repository containing dir.
func (HeadLookup) LastCommit(dir string) (Commit, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Commit{}, errors.WrapError(err, errors.CategoryGit, "failed to open repository").
			WithContext("path", dir).
			Build()
	}
	ref, err := repo.Head()
	if err != nil {
		return Commit{}, errors.WrapError(err, errors.CategoryGit, "failed to resolve HEAD").
			WithContext("path", dir).
			Build()
	}
	obj, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return Commit{}, errors.WrapError(err, errors.CategoryGit, "failed to load HEAD commit").
			WithContext("path", dir).
			WithContext("commit", ref.Hash().String()).
			Build()
	}
	return Commit{Hash: ref.Hash().String(), Subject: Subject(obj.Message)}, nil
}

// Subject returns the first paragraph of a commit message folded onto one line.
func Subject(message string) string {
	message = strings.TrimSpace(strings.ReplaceAll(message, "\r\n", "\n"))
	para, _, _ := strings.Cut(message, "\n\n")
	return strings.Join(strings.Fields(para), " ")
}
