package storage

import (
	"testing"

	"github.com/vovakirdan/swipey/internal/core"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func round(level, score int) core.RoundSummary {
	return core.RoundSummary{
		Level:      level,
		Score:      score,
		Collected:  score + 1,
		Crashes:    1,
		Strength:   5,
		Focus:      5,
		Smoothness: 5,
		Mode:       "gesture",
	}
}

func TestStoreRunID(t *testing.T) {
	store := openStore(t)
	first := store.RunID()
	if first == "" {
		t.Fatal("RunID() should not be empty")
	}
	if second := store.NewRun(); second == first {
		t.Error("NewRun() should return a new id")
	}
}

func TestStoreSaveAndListRounds(t *testing.T) {
	store := openStore(t)

	for _, r := range []core.RoundSummary{round(2, 7), round(1, 3), round(3, 5)} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.Rounds(store.RunID())
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("got %d rounds, expected 3", len(rounds))
	}
	for i, r := range rounds {
		if r.Level != i+1 {
			t.Errorf("rounds[%d].Level = %d, expected %d", i, r.Level, i+1)
		}
		if r.RunID != store.RunID() || r.Mode != "gesture" {
			t.Errorf("rounds[%d] = %+v", i, r)
		}
		if r.CreatedAt.IsZero() {
			t.Errorf("rounds[%d].CreatedAt not parsed", i)
		}
	}
	if rounds[1].Score != 7 || rounds[1].Collected != 8 {
		t.Errorf("round 2 = %+v, expected score 7 collected 8", rounds[1])
	}
}

func TestStoreBestRound(t *testing.T) {
	store := openStore(t)

	best, err := store.BestRound(store.RunID())
	if err != nil {
		t.Fatalf("BestRound() on empty run failed: %v", err)
	}
	if best != nil {
		t.Errorf("BestRound() on empty run = %+v, expected nil", best)
	}

	for _, r := range []core.RoundSummary{round(1, 4), round(2, 9), round(3, 9)} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	best, err = store.BestRound(store.RunID())
	if err != nil {
		t.Fatalf("BestRound() failed: %v", err)
	}
	if best == nil || best.Score != 9 || best.Level != 2 {
		t.Errorf("BestRound() = %+v, expected level 2 score 9", best)
	}
}

func TestStoreRunsAreSeparate(t *testing.T) {
	store := openStore(t)
	oldRun := store.RunID()
	if _, err := store.SaveRound(round(1, 1)); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	newRun := store.NewRun()
	rounds, err := store.Rounds(newRun)
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("new run has %d rounds, expected 0", len(rounds))
	}

	rounds, err = store.Rounds(oldRun)
	if err != nil || len(rounds) != 1 {
		t.Errorf("old run rounds = %v, %v; expected 1 round", rounds, err)
	}
}

func TestStoresDoNotShareData(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	if _, err := a.SaveRound(round(1, 1)); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	rounds, err := b.Rounds(a.RunID())
	if err != nil {
		t.Fatalf("Rounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Error("in-memory stores should be independent")
	}
}
