package model

import "testing"

func TestMediaPathLowercased(t *testing.T) {
	tests := []struct {
		slug     string
		filename string
		want     string
	}{
		{"my-film", "Poster.JPG", "projects/my-film/poster.jpg"},
		{"My-Film", "teaser.png", "projects/my-film/teaser.png"},
		{"album", "cover.png", "projects/album/cover.png"},
	}

	for _, tt := range tests {
		if got := MediaPath(tt.slug, tt.filename); got != tt.want {
			t.Errorf("MediaPath(%q, %q) = %q, want %q", tt.slug, tt.filename, got, tt.want)
		}
	}
}

func TestProjectURLsAndDisplay(t *testing.T) {
	project := &Project{Slug: "my-film", Goal: 5000, Currency: "CHF"}

	if got := project.AbsoluteURL(); got != "/projects/my-film/" {
		t.Errorf("AbsoluteURL() = %q", got)
	}
	if got := project.TeaserImagePath("Teaser.PNG"); got != "projects/my-film/teaser.png" {
		t.Errorf("TeaserImagePath() = %q", got)
	}
	if got := project.GoalDisplay(); got != "5000 CHF" {
		t.Errorf("GoalDisplay() = %q", got)
	}
}

func TestUpdateAbsoluteURL(t *testing.T) {
	update := &ProjectUpdate{ID: 7}
	if got := update.AbsoluteURL("my-film"); got != "/projects/my-film/updates/7/" {
		t.Errorf("AbsoluteURL() = %q", got)
	}
}

func TestCategoryAbsoluteURL(t *testing.T) {
	category := &Category{Slug: "film"}
	if got := category.AbsoluteURL(); got != "/categories/film/" {
		t.Errorf("AbsoluteURL() = %q", got)
	}
}

func TestRewardLimited(t *testing.T) {
	quantity := 5
	limited := &Reward{Quantity: &quantity}
	unlimited := &Reward{}

	if !limited.Limited() {
		t.Error("expected reward with quantity to be limited")
	}
	if unlimited.Limited() {
		t.Error("expected reward without quantity to be unlimited")
	}
}

func TestIdentityPrefersLinkedAccount(t *testing.T) {
	user := &User{FirstName: "Anna", LastName: "Weber", Email: "anna@example.com"}
	linked := &Backer{User: user, FirstName: "Local", LastName: "Name", Email: "local@example.com"}

	identity := linked.Identity()
	if identity.FullName() != "Anna Weber" {
		t.Errorf("FullName() = %q", identity.FullName())
	}
	if identity.Email() != "anna@example.com" {
		t.Errorf("Email() = %q", identity.Email())
	}

	standalone := &Backer{FirstName: "Local", LastName: "Name", Email: "local@example.com"}
	identity = standalone.Identity()
	if identity.FullName() != "Local Name" {
		t.Errorf("FullName() = %q", identity.FullName())
	}
	if identity.Email() != "local@example.com" {
		t.Errorf("Email() = %q", identity.Email())
	}
}

func TestPledgeStatusOrdering(t *testing.T) {
	if !(PledgeUnauthorized < PledgeAuthorized && PledgeAuthorized < PledgePaid) {
		t.Error("pledge statuses must be strictly ordered")
	}
}
