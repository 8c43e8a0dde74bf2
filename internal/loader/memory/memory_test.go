package memory

import (
	"errors"
	"testing"

	"nrclassify/internal/domain"
	"nrclassify/internal/loader"
)

func TestPutAndLoad(t *testing.T) {
	store := NewStore()
	rec := &domain.Record{Entry: &domain.Entry{}}
	store.Put("2QQ1", rec)
	got, err := store.Load("2QQ1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != rec {
		t.Fatalf("expected the stored record back")
	}
}

func TestLoadUnknownIDIsNotFound(t *testing.T) {
	_, err := NewStore().Load("0BAD")
	if !errors.Is(err, loader.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutReplaces(t *testing.T) {
	store := NewStore()
	store.Put("2QQ1", &domain.Record{})
	newer := &domain.Record{Entry: &domain.Entry{}}
	store.Put("2QQ1", newer)
	got, err := store.Load("2QQ1")
	if err != nil || got != newer {
		t.Fatalf("expected replacement record, got %v %v", got, err)
	}
}
