package cache

import (
	"context"
	"log"
	"waypoint-tour-service/internal/domain"
	"waypoint-tour-service/internal/ports"
)

// ChainDirectionsCache reads through layers in order (fastest first).
// The first hit wins and is copied into the layers before it; writes go to every layer.
// Layer errors are logged and treated as misses so a broken layer never hides a healthy one.
type ChainDirectionsCache struct {
	layers []ports.DirectionsCache
}

func NewChainDirectionsCache(layers ...ports.DirectionsCache) *ChainDirectionsCache {
	c := &ChainDirectionsCache{}
	for _, l := range layers {
		if l != nil {
			c.layers = append(c.layers, l)
		}
	}
	return c
}

// Len reports the number of configured layers.
func (c *ChainDirectionsCache) Len() int { return len(c.layers) }

func (c *ChainDirectionsCache) Get(ctx context.Context, key string) (*domain.Directions, bool, error) {
	for i, l := range c.layers {
		d, ok, err := l.Get(ctx, key)
		if err != nil {
			log.Printf("directions cache layer=%d get failed: %v", i, err)
			continue
		}
		if !ok {
			continue
		}

		for j := 0; j < i; j++ {
			if err := c.layers[j].Put(ctx, key, d); err != nil {
				log.Printf("directions cache layer=%d backfill failed: %v", j, err)
			}
		}
		return d, true, nil
	}
	return nil, false, nil
}

func (c *ChainDirectionsCache) Put(ctx context.Context, key string, d *domain.Directions) error {
	for i, l := range c.layers {
		if err := l.Put(ctx, key, d); err != nil {
			log.Printf("directions cache layer=%d put failed: %v", i, err)
		}
	}
	return nil
}
