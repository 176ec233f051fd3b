package logic

import (
	"errors"
	"testing"

	"github.com/feinheit/zipfelchappe/internal/model"
)

func TestGetOrCreateForUserIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	logic := NewBackerLogic(db)

	user := &model.User{Username: "alice", FirstName: "Alice", LastName: "Meier", Email: "alice@example.com"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	first, err := logic.GetOrCreateForUser(user.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := logic.GetOrCreateForUser(user.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected one backer per account, got %d and %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&model.Backer{}).Count(&count).Error; err != nil {
		t.Fatalf("count backers: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single backer, got %d", count)
	}
}

func TestLinkedIdentityUsesAccountFields(t *testing.T) {
	db := newTestDB(t)
	logic := NewBackerLogic(db)

	user := &model.User{Username: "bob", FirstName: "Bob", LastName: "Keller", Email: "bob@example.com"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	backer, err := logic.GetOrCreateForUser(user.ID)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	identity := backer.Identity()
	if identity.FullName() != "Bob Keller" {
		t.Fatalf("expected account full name, got %q", identity.FullName())
	}
	if identity.Email() != "bob@example.com" {
		t.Fatalf("expected account email, got %q", identity.Email())
	}
}

func TestStandaloneBackerUsesLocalFields(t *testing.T) {
	db := newTestDB(t)
	logic := NewBackerLogic(db)

	backer := &model.Backer{FirstName: "Carla", LastName: "Huber", Email: "carla@example.com"}
	if err := logic.CreateBacker(backer); err != nil {
		t.Fatalf("create backer: %v", err)
	}

	loaded, err := logic.GetBacker(backer.ID)
	if err != nil {
		t.Fatalf("get backer: %v", err)
	}

	identity := loaded.Identity()
	if identity.FullName() != "Carla Huber" {
		t.Fatalf("expected local full name, got %q", identity.FullName())
	}
}

func TestCreateBackerRequiresContact(t *testing.T) {
	db := newTestDB(t)
	logic := NewBackerLogic(db)

	if err := logic.CreateBacker(&model.Backer{FirstName: "Nobody"}); !errors.Is(err, ErrBackerNoContact) {
		t.Fatalf("expected ErrBackerNoContact, got %v", err)
	}
}
