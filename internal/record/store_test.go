package record

import (
	"testing"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
)

func TestStore_Append(t *testing.T) {
	store := NewStore()
	if store.Len() != 0 {
		t.Fatalf("a new store must be empty, got: %d", store.Len())
	}

	store.Append(geom.Point{5.1, 3.5, 1.4, 0.2}, "setosa")
	store.Append(geom.Point{7.0, 3.2, 4.7, 1.4}, "versicolor")

	if store.Len() != 2 {
		t.Fatalf("the store length got: %d, expected: %d", store.Len(), 2)
	}
	if got := store.At(0).Label; got != "setosa" {
		t.Errorf("the first label got: %s, expected: setosa", got)
	}
	if got := store.At(1).Features; !got.Equal(geom.Point{7.0, 3.2, 4.7, 1.4}) {
		t.Errorf("the second features got: %v", got)
	}
}

func TestStore_All(t *testing.T) {
	store := NewStore()
	store.Append(geom.Point{1, 1, 1, 1}, "a")

	list := store.All()
	list[0].Label = "changed"
	if store.At(0).Label != "a" {
		t.Errorf("All must return a copy, the store label got: %s", store.At(0).Label)
	}
}
