package commands

import (
	"context"
	"errors"
	"testing"

	"ricettario/internal/domain"
)

func TestDeleteRecipeCommand_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	result, err := NewDeleteRecipeCommand(repo, 2).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.DeletedName != "Omelette" {
		t.Errorf("expected Omelette, got %q", result.DeletedName)
	}
	if !contains(result.Message, "Deleted recipe 2 Omelette") {
		t.Errorf("unexpected message %q", result.Message)
	}

	if _, err := repo.Get(ctx, 2); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected recipe to be gone, got %v", err)
	}
}

func TestDeleteRecipeCommand_Errors(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := NewDeleteRecipeCommand(repo, 0).Execute(context.Background()); err == nil || !contains(err.Error(), "invalid recipe ID") {
		t.Errorf("expected invalid ID error, got %v", err)
	}
	if _, err := NewDeleteRecipeCommand(repo, 42).Execute(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
