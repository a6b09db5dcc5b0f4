package app_test

import (
	"context"
	"testing"

	"sciquest-service/internal/app"
	"sciquest-service/internal/domain"
	"sciquest-service/internal/infra/memory"
)

func TestFeaturedReturnsFirstSix(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for i := 0; i < 8; i++ {
		if _, err := store.CreateExperiment(ctx, domain.Experiment{Title: "exp"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	service := app.NewCatalogService(store)

	featured, err := service.Featured(ctx)
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(featured) != 6 {
		t.Fatalf("expected 6 featured, got %d", len(featured))
	}
	if featured[0].ID != 1 || featured[5].ID != 6 {
		t.Fatalf("featured must be the first of the catalog, got %d..%d", featured[0].ID, featured[5].ID)
	}
}

func TestRelatedSkipsUnresolvableIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a, _ := store.CreateExperiment(ctx, domain.Experiment{Title: "a"})
	b, _ := store.CreateExperiment(ctx, domain.Experiment{Title: "b"})
	if err := store.SetRelatedExperiments(ctx, a.ID, []int64{b.ID, 999}); err != nil {
		t.Fatalf("set related: %v", err)
	}
	service := app.NewCatalogService(store)

	related, err := service.Related(ctx, a.ID)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 1 || related[0].ID != b.ID {
		t.Fatalf("expected only resolvable related, got %+v", related)
	}
}

func TestRelatedMissingExperimentYieldsEmpty(t *testing.T) {
	service := app.NewCatalogService(memory.NewStore())

	related, err := service.Related(context.Background(), 404)
	if err != nil {
		t.Fatalf("related: %v", err)
	}
	if len(related) != 0 {
		t.Fatalf("expected empty related list, got %+v", related)
	}
}
