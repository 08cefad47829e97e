// Package gtm fetches container entities from the Google Tag Manager API.
// It resolves human account and container names to API paths and serves
// raw entity trees to the snapshot assembler.
package gtm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	tagmanager "google.golang.org/api/tagmanager/v2"

	"gtmdiff/internal/gtmerrors"
	"gtmdiff/internal/logging"
)

// Client wraps the Tag Manager v2 API
type Client struct {
	svc    *tagmanager.Service
	logger *logging.Logger
}

// NewClient creates a client using the given authenticated HTTP client
func NewClient(ctx context.Context, httpClient *http.Client, logger *logging.Logger) (*Client, error) {
	svc, err := tagmanager.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create tagmanager service: %w", err)
	}
	return &Client{svc: svc, logger: logger}, nil
}

// findAccountID resolves an account display name to its account ID
func (c *Client) findAccountID(ctx context.Context, accountName string) (string, error) {
	resp, err := c.svc.Accounts.List().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list accounts: %w", err)
	}

	for _, acc := range resp.Account {
		if acc.Name == accountName {
			return acc.AccountId, nil
		}
	}
	return "", gtmerrors.New(gtmerrors.AccountNotFound,
		fmt.Sprintf("no Tag Manager account named %q", accountName), nil)
}

// findContainerPath resolves a container name within an account to its API path
func (c *Client) findContainerPath(ctx context.Context, accountID, containerName string) (string, error) {
	parent := "accounts/" + accountID
	resp, err := c.svc.Accounts.Containers.List(parent).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list containers: %w", err)
	}

	for _, container := range resp.Container {
		if container.Name == containerName {
			return container.Path, nil
		}
	}
	return "", gtmerrors.New(gtmerrors.ContainerNotFound,
		fmt.Sprintf("no container named %q in account %s", containerName, accountID), nil)
}

// findWorkspacePath returns the container's default workspace path: the
// workspace named "Default Workspace" when present, otherwise the first
// listed. A container with no workspace at all is a configuration error.
func (c *Client) findWorkspacePath(ctx context.Context, containerPath string) (string, error) {
	resp, err := c.svc.Accounts.Containers.Workspaces.List(containerPath).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list workspaces: %w", err)
	}

	if len(resp.Workspace) == 0 {
		return "", gtmerrors.New(gtmerrors.WorkspaceMissing,
			fmt.Sprintf("container %s has no workspaces", containerPath), nil)
	}

	for _, ws := range resp.Workspace {
		if strings.EqualFold(ws.Name, "default workspace") {
			return ws.Path, nil
		}
	}
	return resp.Workspace[0].Path, nil
}

// OpenContainer resolves an account and container by name down to a
// workspace and returns a Source serving that workspace's entities
func (c *Client) OpenContainer(ctx context.Context, accountName, containerName string) (*ContainerSource, error) {
	accountID, err := c.findAccountID(ctx, accountName)
	if err != nil {
		return nil, err
	}

	containerPath, err := c.findContainerPath(ctx, accountID, containerName)
	if err != nil {
		return nil, err
	}

	workspacePath, err := c.findWorkspacePath(ctx, containerPath)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("container resolved", map[string]interface{}{
		"account":   accountName,
		"container": containerName,
		"workspace": workspacePath,
	})

	return &ContainerSource{client: c, workspacePath: workspacePath}, nil
}
