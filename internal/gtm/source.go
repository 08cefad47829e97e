package gtm

import (
	"context"
	"encoding/json"
	"fmt"

	"gtmdiff/internal/entity"
	"gtmdiff/internal/snapshot"
)

// ContainerSource serves entity collections for one container workspace.
// It implements snapshot.Source.
type ContainerSource struct {
	client        *Client
	workspacePath string
}

// ListEntities fetches the raw entities of one category from the
// workspace. Categories the API does not serve yield an empty collection.
func (s *ContainerSource) ListEntities(ctx context.Context, category snapshot.Category) ([]entity.Value, error) {
	ws := s.client.svc.Accounts.Containers.Workspaces

	switch category {
	case snapshot.CategoryTags:
		resp, err := ws.Tags.List(s.workspacePath).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("list tags: %w", err)
		}
		return toValues(resp.Tag)
	case snapshot.CategoryTriggers:
		resp, err := ws.Triggers.List(s.workspacePath).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("list triggers: %w", err)
		}
		return toValues(resp.Trigger)
	case snapshot.CategoryVariables:
		resp, err := ws.Variables.List(s.workspacePath).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("list variables: %w", err)
		}
		return toValues(resp.Variable)
	default:
		s.client.logger.Warn("unsupported category requested", map[string]interface{}{
			"category": string(category),
		})
		return nil, nil
	}
}

// toValues converts API objects into generic entity trees through their
// JSON form, so the diff logic never depends on API struct shapes.
func toValues[T any](items []T) ([]entity.Value, error) {
	out := make([]entity.Value, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode entity: %w", err)
		}
		v, err := entity.FromJSON(data)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
