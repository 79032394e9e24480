package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "cache.db"))
}

func TestSaveAndLatestPayload(t *testing.T) {
	store := testStore(t)

	payload := []byte(`{"records": {"location": []}}`)
	if err := store.SavePayload("F-C0032-001", payload, time.Now()); err != nil {
		t.Fatalf("SavePayload: %v", err)
	}

	got, err := store.LatestPayload("F-C0032-001")
	if err != nil {
		t.Fatalf("LatestPayload: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %s, want %s", got, payload)
	}
}

func TestLatestPayloadTakesNewestRow(t *testing.T) {
	store := testStore(t)

	base := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)
	for i, payload := range []string{`{"v": 1}`, `{"v": 2}`, `{"v": 3}`} {
		if err := store.SavePayload("F-A0021-001", []byte(payload), base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("SavePayload #%d: %v", i, err)
		}
	}

	got, err := store.LatestPayload("F-A0021-001")
	if err != nil {
		t.Fatalf("LatestPayload: %v", err)
	}
	if string(got) != `{"v": 3}` {
		t.Errorf("payload = %s, want the last appended row", got)
	}
}

func TestLatestPayloadPartitionsByDataset(t *testing.T) {
	store := testStore(t)

	if err := store.SavePayload("F-C0032-001", []byte(`{"kind": "general"}`), time.Now()); err != nil {
		t.Fatalf("SavePayload: %v", err)
	}
	if err := store.SavePayload("F-A0021-001", []byte(`{"kind": "tide"}`), time.Now()); err != nil {
		t.Fatalf("SavePayload: %v", err)
	}

	got, err := store.LatestPayload("F-C0032-001")
	if err != nil {
		t.Fatalf("LatestPayload: %v", err)
	}
	if string(got) != `{"kind": "general"}` {
		t.Errorf("payload = %s, crossed dataset partition", got)
	}
}

func TestLatestPayloadMissingDataset(t *testing.T) {
	store := testStore(t)

	_, err := store.LatestPayload("F-D0047-089")
	if !errors.Is(err, ErrNoPayload) {
		t.Errorf("err = %v, want ErrNoPayload", err)
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	store := testStore(t)

	for i := 0; i < 3; i++ {
		if err := store.EnsureSchema(); err != nil {
			t.Fatalf("EnsureSchema #%d: %v", i, err)
		}
	}
}

func TestEnsureSchemaCreatesDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "cache.db"))
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
}
