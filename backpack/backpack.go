// Package backpack resolves the inventory of a player record into display
// entries, fetching unknown item definitions concurrently.
package backpack

import (
	"context"

	"github.com/automoto/herbclinic/shared/hudtext"
	"github.com/automoto/herbclinic/shared/messages"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxFetches caps concurrent item lookups.
const maxFetches = 4

// Entry is one row of the backpack list.
type Entry struct {
	ItemID      string
	Name        string
	Description string
	IconRes     string
	Count       string
	Resolved    bool
}

type ItemFetcher interface {
	FetchItem(ctx context.Context, itemID string) (*messages.ItemDef, error)
}

type ItemCache interface {
	Item(id string) (messages.ItemDef, bool)
	CacheItemAs(id string, it messages.ItemDef)
}

// Resolve returns one entry per inventory slot, in order. Definitions missing
// from cache are fetched; a failed fetch leaves the fallback labels and does
// not fail the others.
func Resolve(ctx context.Context, inv []messages.InventoryEntry, cache ItemCache, src ItemFetcher, log *zap.SugaredLogger) []Entry {
	entries := make([]Entry, len(inv))
	missing := map[string]bool{}
	for i, slot := range inv {
		entries[i] = Entry{
			ItemID:      slot.ItemID,
			Name:        hudtext.UnknownItem,
			Description: hudtext.NoDescription,
			Count:       hudtext.Count(slot.Count),
		}
		if _, ok := cache.Item(slot.ItemID); !ok && slot.ItemID != "" {
			missing[slot.ItemID] = true
		}
	}

	if len(missing) > 0 && src != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxFetches)
		for id := range missing {
			g.Go(func() error {
				def, err := src.FetchItem(gctx, id)
				if err != nil {
					log.Debugf("[backpack] item %s: %v", id, err)
					return nil
				}
				cache.CacheItemAs(id, *def)
				return nil
			})
		}
		_ = g.Wait()
	}

	for i := range entries {
		def, ok := cache.Item(entries[i].ItemID)
		if !ok {
			continue
		}
		entries[i].Resolved = true
		entries[i].IconRes = def.IconRes
		if def.Name != "" {
			entries[i].Name = def.Name
		}
		if def.Description != "" {
			entries[i].Description = def.Description
		}
	}
	return entries
}
