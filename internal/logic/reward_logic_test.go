package logic

import (
	"errors"
	"testing"

	"github.com/feinheit/zipfelchappe/internal/model"
)

func TestRewardAvailability(t *testing.T) {
	db := newTestDB(t)
	logic := NewRewardLogic(db)

	project := createTestProject(t, db, "rewarded", 1000, "CHF")
	reward := &model.Reward{Title: "Poster", Minimum: 50, Quantity: intPtr(5)}
	if err := logic.CreateReward(project.ID, reward); err != nil {
		t.Fatalf("create reward: %v", err)
	}

	for i := 0; i < 3; i++ {
		createTestPledge(t, db, project.ID, 60, model.PledgeAuthorized, uintPtr(reward.ID))
	}
	for i := 0; i < 2; i++ {
		createTestPledge(t, db, project.ID, 60, model.PledgeUnauthorized, uintPtr(reward.ID))
	}

	reserved, err := logic.Reserved(reward.ID)
	if err != nil {
		t.Fatalf("reserved: %v", err)
	}
	if reserved != 5 {
		t.Fatalf("expected reserved 5, got %d", reserved)
	}

	awarded, err := logic.Awarded(reward.ID)
	if err != nil {
		t.Fatalf("awarded: %v", err)
	}
	if awarded != 3 {
		t.Fatalf("expected awarded 3, got %d", awarded)
	}

	available, err := logic.Available(reward)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if available != 2 {
		t.Fatalf("expected available 2, got %d", available)
	}

	isAvailable, err := logic.IsAvailable(reward)
	if err != nil {
		t.Fatalf("is available: %v", err)
	}
	if !isAvailable {
		t.Fatal("expected reward with remaining quantity to be available")
	}
}

func TestUnlimitedRewardAlwaysAvailable(t *testing.T) {
	db := newTestDB(t)
	logic := NewRewardLogic(db)

	project := createTestProject(t, db, "unlimited", 1000, "CHF")
	reward := &model.Reward{Title: "Sticker", Minimum: 10}
	if err := logic.CreateReward(project.ID, reward); err != nil {
		t.Fatalf("create reward: %v", err)
	}

	for i := 0; i < 10; i++ {
		createTestPledge(t, db, project.ID, 20, model.PledgePaid, uintPtr(reward.ID))
	}

	isAvailable, err := logic.IsAvailable(reward)
	if err != nil {
		t.Fatalf("is available: %v", err)
	}
	if !isAvailable {
		t.Fatal("expected unlimited reward to always be available")
	}
}

func TestQuantityCannotDropBelowAwarded(t *testing.T) {
	db := newTestDB(t)
	logic := NewRewardLogic(db)

	project := createTestProject(t, db, "floor", 1000, "CHF")
	reward := &model.Reward{Title: "Shirt", Minimum: 100, Quantity: intPtr(5)}
	if err := logic.CreateReward(project.ID, reward); err != nil {
		t.Fatalf("create reward: %v", err)
	}

	for i := 0; i < 3; i++ {
		createTestPledge(t, db, project.ID, 120, model.PledgeAuthorized, uintPtr(reward.ID))
	}

	reward.Quantity = intPtr(2)
	if err := logic.UpdateReward(reward); !errors.Is(err, ErrQuantityBelowAwarded) {
		t.Fatalf("expected ErrQuantityBelowAwarded, got %v", err)
	}

	reward.Quantity = intPtr(3)
	if err := logic.UpdateReward(reward); err != nil {
		t.Fatalf("expected quantity 3 to be accepted with 3 awarded, got %v", err)
	}
}

func TestNewRewardExemptFromQuantityFloor(t *testing.T) {
	db := newTestDB(t)
	logic := NewRewardLogic(db)

	project := createTestProject(t, db, "fresh", 1000, "CHF")
	reward := &model.Reward{Title: "Card", Minimum: 10, Quantity: intPtr(0)}
	if err := logic.CreateReward(project.ID, reward); err != nil {
		t.Fatalf("expected new reward to skip quantity floor check, got %v", err)
	}
}
