package event

import "encoding/json"

// Wire channel names pushed to clients. The client bridge maps each one to a
// process-local signal; an unknown name dispatches nothing.
const (
	WirePaymentNotification   = "payment-notification"
	WirePaymentStatusUpdate   = "payment-status-update"
	WireComplaintNotification = "complaint-notification"
	WirePostUpdate            = "post-update"
	WireNotification          = "notification"
)

// Frame is the JSON envelope travelling on the transport, in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// NewFrame marshals payload into a wire frame for the named channel.
func NewFrame(name string, payload any) (Frame, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Event: name, Data: data}, nil
}

// PaymentPayload is the body of payment-notification and payment-status-update.
type PaymentPayload struct {
	Nama            string `json:"nama"`
	Blok            string `json:"blok"`
	JenisPembayaran string `json:"jenis_pembayaran"`
	Status          string `json:"status,omitempty"`
}

// ComplaintPayload is the body of complaint-notification.
type ComplaintPayload struct {
	Nama     string `json:"nama"`
	Blok     string `json:"blok"`
	Judul    string `json:"judul"`
	Komentar string `json:"komentar,omitempty"`
}

// PostPayload is the body of the broad post-update fan-out.
type PostPayload struct {
	Penulis string `json:"penulis"`
	Judul   string `json:"judul"`
}

// NotificationPayload is the body of the generic notification channel.
type NotificationPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}
