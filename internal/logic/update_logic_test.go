package logic

import (
	"errors"
	"testing"

	"github.com/feinheit/zipfelchappe/internal/model"
)

func TestUpdateNumberCountsPublishedOnly(t *testing.T) {
	db := newTestDB(t)
	logic := NewUpdateLogic(db)

	project := createTestProject(t, db, "news", 1000, "CHF")

	first := &model.ProjectUpdate{ProjectID: project.ID, Title: "First"}
	second := &model.ProjectUpdate{ProjectID: project.ID, Title: "Second"}
	third := &model.ProjectUpdate{ProjectID: project.ID, Title: "Third"}
	for _, u := range []*model.ProjectUpdate{first, second, third} {
		if err := logic.CreateUpdate(u); err != nil {
			t.Fatalf("create update: %v", err)
		}
	}

	if _, err := logic.PublishUpdate(first.ID); err != nil {
		t.Fatalf("publish first: %v", err)
	}
	if _, err := logic.PublishUpdate(third.ID); err != nil {
		t.Fatalf("publish third: %v", err)
	}

	published, err := logic.GetProjectUpdates(project.ID, true)
	if err != nil {
		t.Fatalf("get published updates: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("expected 2 published updates, got %d", len(published))
	}

	n1, err := logic.Number(&published[0])
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	n2, err := logic.Number(&published[1])
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	if n1 != 1 || n2 != 2 {
		t.Fatalf("expected numbers 1 and 2, got %d and %d", n1, n2)
	}

	// 草稿没有序号
	draft, err := logic.GetUpdate(second.ID)
	if err != nil {
		t.Fatalf("get draft: %v", err)
	}
	n, err := logic.Number(draft)
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected draft number 0, got %d", n)
	}
}

func TestUpdateNumberMemoizedPerInstance(t *testing.T) {
	db := newTestDB(t)
	logic := NewUpdateLogic(db)

	project := createTestProject(t, db, "memo", 1000, "CHF")
	update := &model.ProjectUpdate{ProjectID: project.ID, Title: "Only", Status: model.UpdateStatusPublished}
	if err := logic.CreateUpdate(update); err != nil {
		t.Fatalf("create update: %v", err)
	}

	n, err := logic.Number(update)
	if err != nil {
		t.Fatalf("number: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected number 1, got %d", n)
	}

	// 底层数据变了，同一实例仍然返回缓存值
	if err := db.Delete(&model.ProjectUpdate{}, update.ID).Error; err != nil {
		t.Fatalf("delete update: %v", err)
	}
	n, err = logic.Number(update)
	if err != nil {
		t.Fatalf("number after delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected memoized number 1, got %d", n)
	}
}

func TestCreateUpdateRequiresProject(t *testing.T) {
	db := newTestDB(t)
	logic := NewUpdateLogic(db)

	update := &model.ProjectUpdate{ProjectID: 9999, Title: "Orphan"}
	if err := logic.CreateUpdate(update); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestMarkMailsSent(t *testing.T) {
	db := newTestDB(t)
	logic := NewUpdateLogic(db)

	project := createTestProject(t, db, "mails", 1000, "CHF")
	update := &model.ProjectUpdate{ProjectID: project.ID, Title: "Sent"}
	if err := logic.CreateUpdate(update); err != nil {
		t.Fatalf("create update: %v", err)
	}

	if err := logic.MarkMailsSent(update.ID); err != nil {
		t.Fatalf("mark mails sent: %v", err)
	}

	reloaded, err := logic.GetUpdate(update.ID)
	if err != nil {
		t.Fatalf("reload update: %v", err)
	}
	if !reloaded.MailsSent {
		t.Fatal("expected mails_sent to be true")
	}

	if err := logic.MarkMailsSent(9999); !errors.Is(err, ErrUpdateNotFound) {
		t.Fatalf("expected ErrUpdateNotFound, got %v", err)
	}
}
