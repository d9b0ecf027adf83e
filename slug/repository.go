package slug

import (
	"strings"

	"github.com/pkg/errors"
)

// Repository identifies a repository by its owner and name.
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses an owner/name slug.
func ParseRepository(repoSlug string) (Repository, error) {
	slug := strings.TrimSpace(repoSlug)
	slug = strings.Trim(slug, "/")

	parts := strings.Split(slug, "/")
	if len(parts) != 2 {
		return Repository{}, errors.Errorf("invalid repository slug %q (expected <owner>/<name>)", repoSlug)
	}

	for i := range parts {
		switch strings.TrimSpace(parts[i]) {
		case "":
			return Repository{}, errors.Errorf("invalid repository slug %q (empty segment)", repoSlug)
		case ".", "..":
			return Repository{}, errors.Errorf("invalid repository slug %q (dot segment)", repoSlug)
		}
	}

	return Repository{
		Owner: parts[0],
		Name:  parts[1],
	}, nil
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}
