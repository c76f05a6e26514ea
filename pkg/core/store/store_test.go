package store

import (
	"context"
	"testing"
)

func TestDisabledPersistence(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if GetPool() != nil {
		t.Fatal("pool should be nil before initialization")
	}
	if err := InitDB(context.Background()); err == nil {
		t.Error("InitDB should fail without DATABASE_URL")
	}
	if GetPool() != nil {
		t.Error("pool should stay nil after failed initialization")
	}

	repo := NewAssessmentRepo()
	if _, err := repo.Save(context.Background(), nil); err == nil {
		t.Error("Save should fail when persistence is disabled")
	}
	if _, err := repo.Load(context.Background(), "any-id"); err == nil {
		t.Error("Load should fail when persistence is disabled")
	}
}
