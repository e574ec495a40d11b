package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"rukun-live/domain"
	"rukun-live/repositories"
	"rukun-live/services"
)

// inboundEvent is the envelope the CRUD collaborator posts to the internal
// ingress when it lives in another process. Unknown kinds are accepted and
// ignored, never errored: a missed notification is recoverable by polling.
type inboundEvent struct {
	Kind            string `json:"kind" validate:"required"`
	Nama            string `json:"nama,omitempty"`
	Blok            string `json:"blok,omitempty"`
	JenisPembayaran string `json:"jenis_pembayaran,omitempty"`
	Status          string `json:"status,omitempty"`
	RecordID        string `json:"record_id,omitempty"`
	Judul           string `json:"judul,omitempty"`
	Komentar        string `json:"komentar,omitempty"`
	Konten          string `json:"konten,omitempty"`
	Penulis         string `json:"penulis,omitempty"`
	OriginUserID    string `json:"origin_user_id" validate:"required"`
}

type countResponse struct {
	Count int `json:"count"`
}

// API bundles the HTTP surface: event ingress plus the three read-only count
// endpoints consumed by the presenter's polling feed.
type API struct {
	log      *slog.Logger
	service  services.INotifyService
	counters repositories.ICounterRepository
	validate *validator.Validate
}

func NewAPI(log *slog.Logger, service services.INotifyService,
	counters repositories.ICounterRepository) *API {
	return &API{
		log:      log,
		service:  service,
		counters: counters,
		validate: validator.New(),
	}
}

// Routes registers all HTTP handlers on the given mux.
func (a *API) Routes(mux *http.ServeMux, ws *Server) {
	mux.HandleFunc("/ws", ws.ServeWS)
	mux.HandleFunc("POST /internal/events", a.handleEvent)
	mux.HandleFunc("GET /api/posts/count", a.countHandler(a.counters.CountPosts))
	mux.HandleFunc("GET /api/aduan/count", a.countHandler(a.counters.CountComplaints))
	mux.HandleFunc("GET /api/payments/awaiting/count", a.countHandler(a.counters.CountAwaitingPayments))
}

func (a *API) handleEvent(w http.ResponseWriter, r *http.Request) {
	var in inboundEvent
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch in.Kind {
	case "payment-created":
		a.service.PaymentCreated(domain.PaymentCreatedCommand{
			Nama:            in.Nama,
			Blok:            in.Blok,
			JenisPembayaran: in.JenisPembayaran,
			OriginUserID:    in.OriginUserID,
		})
	case "payment-status-changed":
		a.service.PaymentStatusChanged(domain.PaymentStatusChangedCommand{
			PaymentID:       in.RecordID,
			Nama:            in.Nama,
			Blok:            in.Blok,
			JenisPembayaran: in.JenisPembayaran,
			Status:          domain.PaymentStatus(in.Status),
			OriginUserID:    in.OriginUserID,
		})
	case "complaint-created":
		a.service.ComplaintCreated(domain.ComplaintCreatedCommand{
			Nama:         in.Nama,
			Blok:         in.Blok,
			Judul:        in.Judul,
			OriginUserID: in.OriginUserID,
		})
	case "complaint-commented":
		a.service.ComplaintCommented(domain.ComplaintCommentedCommand{
			ComplaintID:  in.RecordID,
			Nama:         in.Nama,
			Blok:         in.Blok,
			Judul:        in.Judul,
			Komentar:     in.Komentar,
			OriginUserID: in.OriginUserID,
		})
	case "post-created":
		a.service.PostCreated(domain.PostCreatedCommand{
			Penulis:      in.Penulis,
			Judul:        in.Judul,
			Konten:       in.Konten,
			OriginUserID: in.OriginUserID,
		})
	default:
		a.log.Debug("Ignoring unknown event kind", "kind", in.Kind)
	}

	w.WriteHeader(http.StatusAccepted)
}

func (a *API) countHandler(count func() (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := count()
		if err != nil {
			a.log.Error("Count query failed", "path", r.URL.Path, "error", err)
			http.Error(w, "count unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(countResponse{Count: n})
	}
}
