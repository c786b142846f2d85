package redis

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"sayyes-srv/internal/gallery"
	"sayyes-srv/internal/gallery/repository"
	"sayyes-srv/internal/model"
	"sayyes-srv/pkg/log"
	pkgRedis "sayyes-srv/pkg/redis"
)

func newTestCache(t *testing.T) (repository.CurateCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
	return New(pkgRedis.NewFromClient(client), l), mr
}

func TestCurateCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), gallery.CurateInput{Category: model.CategoryVenues})
	if !errors.Is(err, repository.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestCurateCacheRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)

	input := gallery.CurateInput{Category: model.CategoryVenues, Style: "Modern", Location: "Austin"}
	out := gallery.CurateOutput{
		IntroText: "Here are some modern venues in Austin!",
		Title:     "Venues Collection",
		Items: []model.MediaItem{{
			Image:       "https://example.com/venue.jpg",
			Title:       "The Grand Hall",
			Description: "Elegant ballroom",
			Tags:        []string{"Elegant", "Ballroom"},
			Location:    "Austin, TX",
			Buttons:     []string{"Love it", "Share", "Save"},
			ShareURL:    "https://sayyes.ai/share/venues/the-grand-hall",
		}},
	}

	if err := cache.Save(context.Background(), input, out); err != nil {
		t.Fatal(err)
	}

	got, err := cache.Get(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, out) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, out)
	}

	// Key is case-insensitive on style and location.
	key := "gallery:curate:venues:modern:austin"
	if !mr.Exists(key) {
		t.Errorf("expected key %q to exist", key)
	}

	ttl := mr.TTL(key)
	if ttl <= 0 || ttl > 5*time.Minute {
		t.Errorf("TTL out of range: %v", ttl)
	}
}

func TestCurateCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)

	input := gallery.CurateInput{Category: model.CategoryCakes}
	if err := cache.Save(context.Background(), input, gallery.CurateOutput{Title: "Cakes Collection"}); err != nil {
		t.Fatal(err)
	}

	mr.FastForward(6 * time.Minute)

	_, err := cache.Get(context.Background(), input)
	if !errors.Is(err, repository.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after expiry, got %v", err)
	}
}
