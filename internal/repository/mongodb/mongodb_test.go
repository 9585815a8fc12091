package mongodb

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bloglist-service/internal/platform/store"
)

func TestObjectID(t *testing.T) {
	if _, err := objectID("5a422aa71b54a676234d17f8"); err != nil {
		t.Fatalf("valid hex rejected: %v", err)
	}
	if _, err := objectID("123"); !errors.Is(err, store.ErrMalformedID) {
		t.Fatalf("expected malformed id, got %v", err)
	}
}

func TestTranslate(t *testing.T) {
	if err := translate(nil); err != nil {
		t.Fatalf("nil should stay nil")
	}
	if err := translate(mongo.ErrNoDocuments); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	if err := translate(dup); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	other := errors.New("network down")
	if err := translate(other); err != other {
		t.Fatalf("unknown errors should pass through")
	}
}

func TestBlogDocWithoutOwner(t *testing.T) {
	d := blogDoc{ID: primitive.NewObjectID(), Title: "t", URL: "u", Likes: 3}
	b := d.toBlog()
	if b.UserID != "" {
		t.Fatalf("expected empty owner, got %q", b.UserID)
	}
	if b.ID != d.ID.Hex() || b.Likes != 3 {
		t.Fatalf("unexpected blog %+v", b)
	}
}
