package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/gallery/repository"
)

// Curation results cache (TTL 5 min)

const curateTTL = 5 * time.Minute

func curateKey(input gallery.CurateInput) string {
	return fmt.Sprintf("gallery:curate:%s:%s:%s",
		input.Category,
		strings.ToLower(input.Style),
		strings.ToLower(input.Location),
	)
}

func (r *implCurateCache) Get(ctx context.Context, input gallery.CurateInput) (gallery.CurateOutput, error) {
	data, err := r.redis.GetClient().Get(ctx, curateKey(input)).Result()
	if err == goredis.Nil {
		return gallery.CurateOutput{}, repository.ErrCacheMiss
	}
	if err != nil {
		return gallery.CurateOutput{}, err
	}

	var out gallery.CurateOutput
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		r.l.Errorf(ctx, "gallery.repository.redis.Get: Failed to unmarshal cached result: %v", err)
		return gallery.CurateOutput{}, err
	}
	return out, nil
}

func (r *implCurateCache) Save(ctx context.Context, input gallery.CurateInput, out gallery.CurateOutput) error {
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	if err := r.redis.GetClient().Set(ctx, curateKey(input), data, curateTTL).Err(); err != nil {
		r.l.Errorf(ctx, "gallery.repository.redis.Save: Failed to save to cache: %v", err)
		return err
	}
	return nil
}
