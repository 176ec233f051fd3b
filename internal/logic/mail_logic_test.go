package logic

import (
	"errors"
	"testing"

	"github.com/feinheit/zipfelchappe/internal/model"
)

func TestUpsertTemplateRejectsUnknownAction(t *testing.T) {
	db := newTestDB(t)
	logic := NewMailLogic(db)

	project := createTestProject(t, db, "mailproj", 1000, "CHF")

	err := logic.UpsertTemplate(&model.MailTemplate{
		ProjectID: project.ID,
		Action:    "goodbye",
		Subject:   "s",
		Body:      "b",
	})
	if !errors.Is(err, ErrUnknownMailAction) {
		t.Fatalf("expected ErrUnknownMailAction, got %v", err)
	}
}

func TestUpsertTemplateIsUniquePerProjectAndAction(t *testing.T) {
	db := newTestDB(t)
	logic := NewMailLogic(db)

	project := createTestProject(t, db, "unique", 1000, "CHF")

	for _, subject := range []string{"Danke!", "Merci!"} {
		if err := logic.UpsertTemplate(&model.MailTemplate{
			ProjectID: project.ID,
			Action:    model.MailActionThankYou,
			Subject:   subject,
			Body:      "body",
		}); err != nil {
			t.Fatalf("upsert template %q: %v", subject, err)
		}
	}

	var count int64
	if err := db.Model(&model.MailTemplate{}).
		Where("project_id = ?", project.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count templates: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single template row, got %d", count)
	}

	tmpl, err := logic.GetTemplate(project.ID, model.MailActionThankYou)
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	if tmpl.Subject != "Merci!" {
		t.Fatalf("expected latest subject, got %q", tmpl.Subject)
	}
}

func TestRenderThankYou(t *testing.T) {
	db := newTestDB(t)
	logic := NewMailLogic(db)

	project := createTestProject(t, db, "thanks", 1000, "CHF")
	if err := logic.UpsertTemplate(&model.MailTemplate{
		ProjectID: project.ID,
		Action:    model.MailActionThankYou,
		Subject:   "Danke {{.BackerName}}!",
		Body:      "Du hast {{.Amount}} {{.Currency}} zu {{.Project}} beigetragen.",
	}); err != nil {
		t.Fatalf("upsert template: %v", err)
	}

	backer := &model.Backer{FirstName: "Dora", LastName: "Frei", Email: "dora@example.com"}
	if err := db.Create(backer).Error; err != nil {
		t.Fatalf("create backer: %v", err)
	}

	pledge := &model.Pledge{ProjectID: project.ID, BackerID: &backer.ID, Amount: 250}
	if err := db.Create(pledge).Error; err != nil {
		t.Fatalf("create pledge: %v", err)
	}
	pledge.Backer = backer

	subject, body, err := logic.RenderThankYou(pledge)
	if err != nil {
		t.Fatalf("render thank you: %v", err)
	}
	if subject != "Danke Dora Frei!" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	if body != "Du hast 250 CHF zu Test thanks beigetragen." {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestRenderThankYouWithoutTemplate(t *testing.T) {
	db := newTestDB(t)
	logic := NewMailLogic(db)

	project := createTestProject(t, db, "silent", 1000, "CHF")
	pledge := &model.Pledge{ProjectID: project.ID, Amount: 100}
	if err := db.Create(pledge).Error; err != nil {
		t.Fatalf("create pledge: %v", err)
	}

	if _, _, err := logic.RenderThankYou(pledge); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
