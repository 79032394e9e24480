package loader

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/ngmaloney/cwa-terminal/internal/models"
)

func TestMemoCacheExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	memo := newMemoCache(clock, 15*time.Minute)

	forecast := &models.Forecast{Source: models.SourceLive}
	memo.put("key|F-C0032-001", forecast)

	if got, ok := memo.get("key|F-C0032-001"); !ok || got != forecast {
		t.Fatal("fresh entry should hit")
	}

	clock.Advance(14 * time.Minute)
	if _, ok := memo.get("key|F-C0032-001"); !ok {
		t.Error("entry inside the window should still hit")
	}

	clock.Advance(time.Minute)
	if _, ok := memo.get("key|F-C0032-001"); ok {
		t.Error("entry at the window boundary should expire")
	}
}

func TestMemoCacheMiss(t *testing.T) {
	memo := newMemoCache(clockwork.NewFakeClock(), time.Minute)
	if _, ok := memo.get("absent"); ok {
		t.Error("unknown key should miss")
	}
}

func TestMemoCacheKeysAreIndependent(t *testing.T) {
	memo := newMemoCache(clockwork.NewFakeClock(), time.Minute)

	live := &models.Forecast{Source: models.SourceLive}
	cached := &models.Forecast{Source: models.SourceCache}
	memo.put("a|F-C0032-001", live)
	memo.put("b|F-C0032-001", cached)

	if got, ok := memo.get("a|F-C0032-001"); !ok || got != live {
		t.Error("credential a should see its own entry")
	}
	if got, ok := memo.get("b|F-C0032-001"); !ok || got != cached {
		t.Error("credential b should see its own entry")
	}
}

func TestMemoCacheClear(t *testing.T) {
	memo := newMemoCache(clockwork.NewFakeClock(), time.Minute)
	memo.put("key", &models.Forecast{})
	memo.clear()
	if _, ok := memo.get("key"); ok {
		t.Error("cleared cache should miss")
	}
}
