package collaborators

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/collabctl/collabctl/api/rest"
	"github.com/collabctl/collabctl/errs"
	"github.com/collabctl/collabctl/settings"
)

type collaboratorsRestClient struct {
	client *rest.Client
}

var _ CollaboratorsClient = &collaboratorsRestClient{}

// NewCollaboratorsRestClient returns a new collaboratorsRestClient satisfying the CollaboratorsClient
// interface via the REST API.
func NewCollaboratorsRestClient(config settings.Config) (*collaboratorsRestClient, error) {
	config.ApplyDefaults()
	return NewCollaboratorsClientWithRest(rest.NewFromConfig(config.Host, &config)), nil
}

// NewCollaboratorsClientWithRest builds the client on top of an existing transport.
func NewCollaboratorsClientWithRest(client *rest.Client) *collaboratorsRestClient {
	return &collaboratorsRestClient{client: client}
}

func (c *collaboratorsRestClient) GetAll(ctx context.Context, owner, name string) ([]User, error) {
	return c.GetAllWithOptions(ctx, owner, name, rest.ListOptions{})
}

func (c *collaboratorsRestClient) GetAllWithOptions(ctx context.Context, owner, name string, options rest.ListOptions) ([]User, error) {
	if err := validateRepository(owner, name); err != nil {
		return nil, err
	}

	return rest.GetAllPages[User](ctx, c.client, collaboratorsURL(owner, name), options)
}

func (c *collaboratorsRestClient) IsCollaborator(ctx context.Context, owner, name, user string) (bool, error) {
	if err := validateCollaborator(owner, name, user); err != nil {
		return false, err
	}

	req, err := c.client.NewRequest(ctx, http.MethodGet, collaboratorURL(owner, name, user), nil)
	if err != nil {
		return false, err
	}

	// 204 when user is a collaborator, 404 when not.
	_, err = c.client.DoRequest(req, nil)
	if err != nil {
		if rest.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *collaboratorsRestClient) Add(ctx context.Context, owner, name, user string) error {
	return c.AddWithPermission(ctx, owner, name, user, "")
}

type addCollaboratorRequest struct {
	Permission Permission `json:"permission"`
}

func (c *collaboratorsRestClient) AddWithPermission(ctx context.Context, owner, name, user string, permission Permission) error {
	if err := validateCollaborator(owner, name, user); err != nil {
		return err
	}
	if err := validatePermission(permission); err != nil {
		return err
	}

	var payload interface{}
	if permission != "" {
		payload = addCollaboratorRequest{Permission: permission}
	}

	req, err := c.client.NewRequest(ctx, http.MethodPut, collaboratorURL(owner, name, user), payload)
	if err != nil {
		return err
	}

	// 201 means an invitation was created, 204 that the user already had access.
	_, err = c.client.DoRequest(req, nil)
	return err
}

func (c *collaboratorsRestClient) Delete(ctx context.Context, owner, name, user string) error {
	if err := validateCollaborator(owner, name, user); err != nil {
		return err
	}

	req, err := c.client.NewRequest(ctx, http.MethodDelete, collaboratorURL(owner, name, user), nil)
	if err != nil {
		return err
	}

	_, err = c.client.DoRequest(req, nil)
	return err
}

func (c *collaboratorsRestClient) ReviewPermission(ctx context.Context, owner, name, user string) (*CollaboratorPermission, error) {
	if err := validateCollaborator(owner, name, user); err != nil {
		return nil, err
	}

	u := collaboratorURL(owner, name, user)
	u.Path += "/permission"
	req, err := c.client.NewRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var resp CollaboratorPermission
	if _, err = c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func collaboratorsURL(owner, name string) *url.URL {
	return &url.URL{Path: fmt.Sprintf("repos/%s/%s/collaborators", owner, name)}
}

func collaboratorURL(owner, name, user string) *url.URL {
	return &url.URL{Path: fmt.Sprintf("repos/%s/%s/collaborators/%s", owner, name, user)}
}

func validateRepository(owner, name string) error {
	if err := validateSegment("owner", owner); err != nil {
		return err
	}
	return validateSegment("name", name)
}

func validateCollaborator(owner, name, user string) error {
	if err := validateRepository(owner, name); err != nil {
		return err
	}
	return validateSegment("user", user)
}

func validateSegment(argument, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.InvalidArgumentf(argument, "%s must not be empty", argument)
	}
	if strings.Contains(value, "/") {
		return errs.InvalidArgumentf(argument, "%s must not contain '/', got %q", argument, value)
	}
	// dot segments are removed when the path is resolved against the base URL
	if value == "." || value == ".." {
		return errs.InvalidArgumentf(argument, "%s must not be %q", argument, value)
	}
	return nil
}

func validatePermission(permission Permission) error {
	switch permission {
	case "", PermissionPull, PermissionTriage, PermissionPush, PermissionMaintain, PermissionAdmin:
		return nil
	}
	return errs.InvalidArgumentf("permission", "unknown permission %q", permission)
}
