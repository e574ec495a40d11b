package domain

// PaymentStatus is the confirmation state of a payment proof.
type PaymentStatus string

const (
	PaymentMenunggu     PaymentStatus = "menunggu"
	PaymentDikonfirmasi PaymentStatus = "dikonfirmasi"
	PaymentDitolak      PaymentStatus = "ditolak"
)

// Settled reports whether the payment no longer awaits confirmation.
func (s PaymentStatus) Settled() bool {
	return s == PaymentDikonfirmasi || s == PaymentDitolak
}

// Commands below are the inbound intents the CRUD collaborator hands to the
// notify service. The service stamps id and timestamp; callers only describe
// what happened.

type PaymentCreatedCommand struct {
	Nama            string
	Blok            string
	JenisPembayaran string
	OriginUserID    string
}

type PaymentStatusChangedCommand struct {
	PaymentID       string
	Nama            string
	Blok            string
	JenisPembayaran string
	Status          PaymentStatus
	OriginUserID    string
}

type ComplaintCreatedCommand struct {
	Nama         string
	Blok         string
	Judul        string
	OriginUserID string
}

type ComplaintCommentedCommand struct {
	ComplaintID  string
	Nama         string
	Blok         string
	Judul        string
	Komentar     string
	OriginUserID string
}

type PostCreatedCommand struct {
	Penulis      string
	Judul        string
	Konten       string
	OriginUserID string
}
