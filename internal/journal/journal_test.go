package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/database"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/logging"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

func openJournal(t *testing.T) (*Journal, func()) {
	t.Helper()
	ctx := logging.WithLogger(context.Background(), zap.NewNop().Sugar())
	db, err := database.NewFromEnv(ctx, &database.Config{
		FileName:    filepath.Join(t.TempDir(), "journal.db"),
		OpenTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("unable to open db: %v", err)
	}
	return New(db), func() {
		if err := db.Close(ctx); err != nil {
			t.Errorf("unable to close db: %v", err)
		}
	}
}

func TestJournal_AppendList(t *testing.T) {
	j, closeFn := openJournal(t)
	defer closeFn()

	base := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	entries := []Entry{
		NewEntry(geom.Point{6.3, 3.3, 6.0, 2.5}, 3, "virginica", base.Add(time.Second)),
		NewEntry(geom.Point{5.0, 3.6, 1.4, 0.2}, 1, "setosa", base),
	}
	for _, e := range entries {
		if err := j.Append(context.Background(), e); err != nil {
			t.Fatalf("unable to append: %v", err)
		}
	}

	got, err := j.List(context.Background())
	if err != nil {
		t.Fatalf("unable to list: %v", err)
	}
	expected := []Entry{entries[1], entries[0]}
	if len(got) != len(expected) {
		t.Fatalf("the entries got: %d, expected: %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i].ID != expected[i].ID ||
			got[i].Query != expected[i].Query ||
			got[i].K != expected[i].K ||
			got[i].Label != expected[i].Label ||
			!got[i].CreatedAt.Equal(expected[i].CreatedAt) {
			t.Errorf("the entry %d got: %s, expected: %s", i, spew.Sdump(got[i]), spew.Sdump(expected[i]))
		}
	}

	n, err := j.Count()
	if err != nil {
		t.Fatalf("unable to count: %v", err)
	}
	if n != 2 {
		t.Errorf("the count got: %d, expected: 2", n)
	}
}

func TestJournal_ListEmpty(t *testing.T) {
	j, closeFn := openJournal(t)
	defer closeFn()

	got, err := j.List(context.Background())
	if err != nil {
		t.Fatalf("unable to list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("an empty journal got entries: %v", got)
	}
}
