package collaborators

import (
	"context"

	"github.com/collabctl/collabctl/api/rest"
)

// Permission is a repository permission level that can be granted to a collaborator.
type Permission string

const (
	PermissionPull     Permission = "pull"
	PermissionTriage   Permission = "triage"
	PermissionPush     Permission = "push"
	PermissionMaintain Permission = "maintain"
	PermissionAdmin    Permission = "admin"
)

// User is a GitHub account as returned by the collaborators endpoints.
type User struct {
	Login       string           `json:"login"`
	ID          int64            `json:"id"`
	NodeID      string           `json:"node_id"`
	AvatarURL   string           `json:"avatar_url"`
	HTMLURL     string           `json:"html_url"`
	Type        string           `json:"type"`
	SiteAdmin   bool             `json:"site_admin"`
	RoleName    string           `json:"role_name,omitempty"`
	Permissions *UserPermissions `json:"permissions,omitempty"`
}

// UserPermissions are the permissions a collaborator holds on the listed repository.
type UserPermissions struct {
	Admin    bool `json:"admin"`
	Maintain bool `json:"maintain"`
	Push     bool `json:"push"`
	Triage   bool `json:"triage"`
	Pull     bool `json:"pull"`
}

// CollaboratorPermission is the permission a user holds on a repository.
type CollaboratorPermission struct {
	Permission string `json:"permission"`
	RoleName   string `json:"role_name"`
	User       *User  `json:"user"`
}

// CollaboratorsClient manages the collaborators of a repository. See
// https://docs.github.com/rest/collaborators/collaborators
//
// owner, name and user are required. Every failure reported by the API is
// returned unchanged as the transport's *rest.HTTPError.
type CollaboratorsClient interface {
	// GetAll lists every collaborator of the repository.
	GetAll(ctx context.Context, owner, name string) ([]User, error)
	// GetAllWithOptions lists collaborators using the given paging options.
	GetAllWithOptions(ctx context.Context, owner, name string, options rest.ListOptions) ([]User, error)
	// IsCollaborator reports whether user is a collaborator on the repository.
	IsCollaborator(ctx context.Context, owner, name, user string) (bool, error)
	// Add adds user as a collaborator. Adding an existing collaborator succeeds.
	Add(ctx context.Context, owner, name, user string) error
	// AddWithPermission adds user with the given permission.
	AddWithPermission(ctx context.Context, owner, name, user string, permission Permission) error
	// Delete removes user from the collaborators. Removing a non-collaborator succeeds.
	Delete(ctx context.Context, owner, name, user string) error
	// ReviewPermission returns the permission user holds on the repository.
	ReviewPermission(ctx context.Context, owner, name, user string) (*CollaboratorPermission, error)
}
