//go:generate go run go.uber.org/mock/mockgen -source=counters.go -destination=../mocks/mock_counters.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"rukun-live/domain"
)

// Key prefixes of the notification read model. Posts and complaints use
// a padded timestamp inside the key so entries stay chronologically sorted;
// awaiting payments are keyed by id alone because a status change must be
// able to settle them later.
const (
	prefixPost    = "post:"
	prefixAduan   = "aduan:"
	prefixPayment = "bayar:"
)

// ICounterRepository is the read model behind the polling count endpoints.
// It never exposes individual records to the presenter, only counts.
type ICounterRepository interface {
	StorePost(p PostRecord) error
	StoreComplaint(c ComplaintRecord) error
	StoreAwaitingPayment(p PaymentRecord) error
	SettlePayment(id uuid.UUID) error
	CountPosts() (int, error)
	CountComplaints() (int, error)
	CountAwaitingPayments() (int, error)
}

type PostRecord struct {
	ID      uuid.UUID `json:"id"`
	Penulis string    `json:"penulis"`
	Judul   string    `json:"judul"`
	At      time.Time `json:"at"`
}

type ComplaintRecord struct {
	ID    uuid.UUID `json:"id"`
	Nama  string    `json:"nama"`
	Blok  string    `json:"blok"`
	Judul string    `json:"judul"`
	At    time.Time `json:"at"`
}

type PaymentRecord struct {
	ID              uuid.UUID            `json:"id"`
	Nama            string               `json:"nama"`
	Blok            string               `json:"blok"`
	JenisPembayaran string               `json:"jenis_pembayaran"`
	Status          domain.PaymentStatus `json:"status"`
	At              time.Time            `json:"at"`
}

type CounterRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewCounterRepository(db *badger.DB, log *slog.Logger) CounterRepository {
	return CounterRepository{db: db, log: log}
}

// StorePost persists a post entry. The key is formatted as
// "post:{timestamp_padded}:{uuid}" to keep lexicographical order
// chronological and to break collisions at the same nanosecond.
func (r CounterRepository) StorePost(p PostRecord) error {
	key := timedKey(prefixPost, p.At, p.ID)
	return r.store(key, p)
}

func (r CounterRepository) StoreComplaint(c ComplaintRecord) error {
	key := timedKey(prefixAduan, c.At, c.ID)
	return r.store(key, c)
}

// StoreAwaitingPayment records a payment waiting for confirmation, keyed by
// id so SettlePayment can remove it once an admin confirms or rejects it.
func (r CounterRepository) StoreAwaitingPayment(p PaymentRecord) error {
	return r.store(prefixPayment+p.ID.String(), p)
}

// SettlePayment removes an awaiting entry. A payment that was never recorded
// (or already settled) is not an error: the count simply stays correct.
func (r CounterRepository) SettlePayment(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(prefixPayment + id.String()))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

func (r CounterRepository) CountPosts() (int, error) {
	return r.countPrefix(prefixPost)
}

func (r CounterRepository) CountComplaints() (int, error) {
	return r.countPrefix(prefixAduan)
}

func (r CounterRepository) CountAwaitingPayments() (int, error) {
	return r.countPrefix(prefixPayment)
}

func (r CounterRepository) store(key string, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// countPrefix counts keys under a prefix without loading values.
func (r CounterRepository) countPrefix(prefix string) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func timedKey(prefix string, at time.Time, id uuid.UUID) string {
	return fmt.Sprintf("%s%019d:%s", prefix, at.UnixNano(), id)
}
