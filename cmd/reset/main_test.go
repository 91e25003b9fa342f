package main

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type fakeDropper struct {
	errs    map[string]error
	dropped []string
}

func (f *fakeDropper) Drop(ctx context.Context, name string) error {
	f.dropped = append(f.dropped, name)
	return f.errs[name]
}

func TestDropAllToleratesMissingCollections(t *testing.T) {
	d := &fakeDropper{errs: map[string]error{
		"carpools": mongo.CommandError{Code: 26, Name: "NamespaceNotFound", Message: "ns not found"},
	}}

	names := []string{"users", "carpools", "payments"}
	if ok := dropAll(zap.NewNop(), d, names); !ok {
		t.Fatal("missing collection treated as failure")
	}
	if len(d.dropped) != len(names) {
		t.Fatalf("attempted %d drops, want %d", len(d.dropped), len(names))
	}
}

func TestDropAllReportsRealFailures(t *testing.T) {
	d := &fakeDropper{errs: map[string]error{
		"payments": errors.New("connection reset"),
	}}

	if ok := dropAll(zap.NewNop(), d, []string{"users", "payments", "chats"}); ok {
		t.Fatal("drop error not reported")
	}
	// the loop keeps going past a failed collection
	if len(d.dropped) != 3 {
		t.Fatalf("attempted %d drops, want 3", len(d.dropped))
	}
}
