// Package journal keeps an append-only audit trail of answered predictions.
package journal

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/database"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
	xdr "github.com/davecgh/go-xdr/xdr2"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

const bucketName = "predictions"

type Entry struct {
	ID        uuid.UUID
	Query     geom.Point
	K         int
	Label     string
	CreatedAt time.Time
}

func NewEntry(q geom.Point, k int, label string, createdAt time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		Query:     q,
		K:         k,
		Label:     label,
		CreatedAt: createdAt,
	}
}

// record is the XDR layout of an Entry.
type record struct {
	ID        [16]byte
	Query     [geom.NumFeatures]float64
	K         int32
	Label     string
	CreatedAt int64
}

func encode(e Entry) ([]byte, error) {
	var buf bytes.Buffer
	r := record{
		ID:        e.ID,
		Query:     e.Query,
		K:         int32(e.K),
		Label:     e.Label,
		CreatedAt: e.CreatedAt.UnixNano(),
	}
	if _, err := xdr.Marshal(&buf, &r); err != nil {
		return nil, fmt.Errorf("xdr marshal: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (Entry, error) {
	var r record
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &r); err != nil {
		return Entry{}, fmt.Errorf("xdr unmarshal: %w", err)
	}
	return Entry{
		ID:        uuid.UUID(r.ID),
		Query:     geom.Point(r.Query),
		K:         int(r.K),
		Label:     r.Label,
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
	}, nil
}

func New(db *database.DB) *Journal {
	return &Journal{sDB: db}
}

type Journal struct {
	sDB *database.DB
}

func (j *Journal) Append(_ context.Context, e Entry) error {
	value, err := encode(e)
	if err != nil {
		return err
	}
	if err := j.sDB.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		if err := b.Put(e.ID[:], value); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}
	return nil
}

// List returns every entry ordered by creation time.
func (j *Journal) List(_ context.Context) ([]Entry, error) {
	var entries []Entry
	if err := j.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			e, err := decode(v)
			if err != nil {
				return err
			}
			entries = append(entries, e)
			return nil
		})
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	sort.SliceStable(entries, func(i, k int) bool {
		return entries[i].CreatedAt.Before(entries[k].CreatedAt)
	})
	return entries, nil
}

func (j *Journal) Count() (int, error) {
	var n int
	if err := j.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	}); err != nil {
		return 0, fmt.Errorf("view transaction error: %w", err)
	}
	return n, nil
}
