package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"rukun-live/domain"
)

func newTestRepository(t *testing.T) CounterRepository {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	return NewCounterRepository(db, slog.Default())
}

func TestCounterRepository_CountPosts(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)
	at := time.Now().UTC()

	// Given three stored posts
	for i := 0; i < 3; i++ {
		err := repository.StorePost(PostRecord{
			ID:      uuid.New(),
			Penulis: "Pak RT",
			Judul:   "Pengumuman",
			At:      at.Add(time.Duration(i) * time.Minute),
		})
		req.NoError(err)
	}

	// Then the count matches without touching complaints or payments
	count, err := repository.CountPosts()
	req.NoError(err)
	req.Equal(3, count)

	count, err = repository.CountComplaints()
	req.NoError(err)
	req.Zero(count)
}

func TestCounterRepository_CountComplaints(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	err := repository.StoreComplaint(ComplaintRecord{
		ID:    uuid.New(),
		Nama:  "Siti",
		Blok:  "A",
		Judul: "Lampu jalan mati",
		At:    time.Now().UTC(),
	})
	req.NoError(err)

	count, err := repository.CountComplaints()
	req.NoError(err)
	req.Equal(1, count)
}

func TestCounterRepository_SettlePaymentRemovesAwaitingEntry(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)
	paymentID := uuid.New()

	// Given a payment awaiting confirmation
	err := repository.StoreAwaitingPayment(PaymentRecord{
		ID:              paymentID,
		Nama:            "Budi",
		Blok:            "B",
		JenisPembayaran: "iuran",
		Status:          domain.PaymentMenunggu,
		At:              time.Now().UTC(),
	})
	req.NoError(err)

	count, err := repository.CountAwaitingPayments()
	req.NoError(err)
	req.Equal(1, count)

	// When the admin confirms it
	req.NoError(repository.SettlePayment(paymentID))

	// Then it no longer counts as awaiting
	count, err = repository.CountAwaitingPayments()
	req.NoError(err)
	req.Zero(count)
}

func TestCounterRepository_SettleUnknownPaymentIsSuccess(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	// Settling a payment that was never recorded keeps the count correct
	req.NoError(repository.SettlePayment(uuid.New()))
}

func TestCounterRepository_TimedKeysStayChronological(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	earlier := timedKey(prefixPost, at, uuid.New())
	later := timedKey(prefixPost, at.Add(time.Second), uuid.New())

	req.Less(earlier, later)
}
