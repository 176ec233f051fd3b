package logic

import (
	"testing"

	"github.com/feinheit/zipfelchappe/internal/model"
)

func TestCategorySlugUnique(t *testing.T) {
	db := newTestDB(t)
	logic := NewCategoryLogic(db)

	if err := logic.CreateCategory(&model.Category{Title: "Film", Slug: "film"}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if err := logic.CreateCategory(&model.Category{Title: "Film 2", Slug: "film"}); err == nil {
		t.Fatal("expected duplicate slug to be rejected")
	}
}

func TestResolveTranslationFallsBackToSelf(t *testing.T) {
	db := newTestDB(t)
	logic := NewCategoryLogic(db)

	category := &model.Category{Title: "Music", Slug: "music"}
	if err := logic.CreateCategory(category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	if err := logic.UpsertTranslation(&model.CategoryTranslation{
		CategoryID: category.ID,
		Language:   "fr",
		Title:      "Musique",
	}); err != nil {
		t.Fatalf("upsert translation: %v", err)
	}

	translated := logic.ResolveTranslation(category, "fr")
	if translated.Title != "Musique" {
		t.Fatalf("expected translated title Musique, got %q", translated.Title)
	}
	if category.Title != "Music" {
		t.Fatalf("expected original category untouched, got %q", category.Title)
	}

	fallback := logic.ResolveTranslation(category, "it")
	if fallback.Title != "Music" {
		t.Fatalf("expected fallback to original title, got %q", fallback.Title)
	}
}

func TestUpsertTranslationOverwrites(t *testing.T) {
	db := newTestDB(t)
	logic := NewCategoryLogic(db)

	category := &model.Category{Title: "Art", Slug: "art"}
	if err := logic.CreateCategory(category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	for _, title := range []string{"Kunst", "Bildende Kunst"} {
		if err := logic.UpsertTranslation(&model.CategoryTranslation{
			CategoryID: category.ID,
			Language:   "de",
			Title:      title,
		}); err != nil {
			t.Fatalf("upsert translation %q: %v", title, err)
		}
	}

	var count int64
	if err := db.Model(&model.CategoryTranslation{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count translations: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single translation row, got %d", count)
	}

	translated := logic.ResolveTranslation(category, "de")
	if translated.Title != "Bildende Kunst" {
		t.Fatalf("expected latest translation, got %q", translated.Title)
	}
}

func TestProjectCount(t *testing.T) {
	db := newTestDB(t)
	logic := NewCategoryLogic(db)

	category := &model.Category{Title: "Tech", Slug: "tech"}
	if err := logic.CreateCategory(category); err != nil {
		t.Fatalf("create category: %v", err)
	}

	project := createTestProject(t, db, "gadget", 1000, "CHF")
	if err := db.Model(project).Association("Categories").Append(category); err != nil {
		t.Fatalf("associate category: %v", err)
	}

	count, err := logic.ProjectCount(category.ID)
	if err != nil {
		t.Fatalf("project count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected project count 1, got %d", count)
	}
}
