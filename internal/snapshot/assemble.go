package snapshot

import (
	"context"

	"gtmdiff/internal/entity"
	"gtmdiff/internal/logging"
)

// Source supplies raw entity collections per category. The live
// implementation talks to the Tag Manager API; tests use fakes.
// A source returning no entities for a category is normal.
type Source interface {
	ListEntities(ctx context.Context, category Category) ([]entity.Value, error)
}

// Options configures snapshot assembly. Noise keys and the category set
// are deliberately parameters rather than constants so the assembler can
// serve arbitrary entity kinds.
type Options struct {
	// Categories to assemble, in the order they will later be compared
	Categories []Category
	// NoiseKeys are mapping keys stripped from every entity before indexing
	NoiseKeys []string
	// IdentifierFields are per-category fallback key fields used when an
	// entity has no name
	IdentifierFields map[Category][]string
}

// DefaultOptions returns assembly options matching the Tag Manager data
// model: tags, triggers and variables, with environment-coupled metadata
// stripped and the per-kind numeric IDs as key fallbacks.
func DefaultOptions() Options {
	return Options{
		Categories: []Category{CategoryTags, CategoryTriggers, CategoryVariables},
		NoiseKeys: []string{
			"path",
			"tagManagerUrl",
			"fingerprint",
			"accountId",
			"containerId",
			"workspaceId",
			"parentFolderId",
		},
		IdentifierFields: map[Category][]string{
			CategoryTags:      {"tagId"},
			CategoryTriggers:  {"triggerId"},
			CategoryVariables: {"variableId"},
		},
	}
}

// Assembler turns a Source into a Snapshot: per category it fetches the
// raw entities, strips noise keys, then indexes by entity key.
type Assembler struct {
	opts   Options
	noise  entity.KeySet
	logger *logging.Logger
}

// NewAssembler creates an assembler with the given options
func NewAssembler(opts Options, logger *logging.Logger) *Assembler {
	return &Assembler{
		opts:   opts,
		noise:  entity.NewKeySet(opts.NoiseKeys),
		logger: logger,
	}
}

// Assemble fetches and normalizes every configured category. Errors from
// the source are terminal and propagate unchanged.
func (a *Assembler) Assemble(ctx context.Context, src Source) (Snapshot, error) {
	snap := make(Snapshot, len(a.opts.Categories))

	for _, category := range a.opts.Categories {
		items, err := src.ListEntities(ctx, category)
		if err != nil {
			return nil, err
		}

		stripped := make([]entity.Value, len(items))
		for i, item := range items {
			stripped[i] = entity.Strip(item, a.noise)
		}

		indexed, overwritten := Index(stripped, a.opts.IdentifierFields[category])
		if overwritten > 0 {
			a.logger.Warn("duplicate entity keys, keeping last occurrence", map[string]interface{}{
				"category": string(category),
				"count":    overwritten,
			})
		}
		a.logger.Debug("category assembled", map[string]interface{}{
			"category": string(category),
			"entities": len(indexed),
		})

		snap[category] = indexed
	}

	return snap, nil
}
