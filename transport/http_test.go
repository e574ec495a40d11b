package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rukun-live/auth"
	"rukun-live/domain"
	"rukun-live/mocks"
)

func newTestAPI(t *testing.T) (*mocks.MockINotifyService, *mocks.MockICounterRepository, *httptest.Server) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	serviceMock := mocks.NewMockINotifyService(ctrl)
	countersMock := mocks.NewMockICounterRepository(ctrl)

	api := NewAPI(slog.Default(), serviceMock, countersMock)
	ws := NewServer(slog.Default(), serviceMock, auth.NewVerifier("test-secret"), 8)

	mux := http.NewServeMux()
	api.Routes(mux, ws)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return serviceMock, countersMock, srv
}

func postEvent(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/internal/events", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHandleEvent_PaymentCreated(t *testing.T) {
	req := require.New(t)
	serviceMock, _, srv := newTestAPI(t)

	serviceMock.EXPECT().
		PaymentCreated(domain.PaymentCreatedCommand{
			Nama:            "Budi",
			Blok:            "B",
			JenisPembayaran: "iuran",
			OriginUserID:    "u-1",
		}).
		Times(1)

	resp := postEvent(t, srv,
		`{"kind":"payment-created","nama":"Budi","blok":"B","jenis_pembayaran":"iuran","origin_user_id":"u-1"}`)

	req.Equal(http.StatusAccepted, resp.StatusCode)
}

func TestHandleEvent_StatusChangeKeepsRecordID(t *testing.T) {
	req := require.New(t)
	serviceMock, _, srv := newTestAPI(t)

	serviceMock.EXPECT().
		PaymentStatusChanged(domain.PaymentStatusChangedCommand{
			PaymentID:       "5f0c1c9e-7d4a-4c3e-9f7e-2f6a0f1b2c3d",
			Nama:            "Budi",
			Blok:            "B",
			JenisPembayaran: "iuran",
			Status:          domain.PaymentDikonfirmasi,
			OriginUserID:    "u-admin",
		}).
		Times(1)

	resp := postEvent(t, srv,
		`{"kind":"payment-status-changed","record_id":"5f0c1c9e-7d4a-4c3e-9f7e-2f6a0f1b2c3d",`+
			`"nama":"Budi","blok":"B","jenis_pembayaran":"iuran","status":"dikonfirmasi","origin_user_id":"u-admin"}`)

	req.Equal(http.StatusAccepted, resp.StatusCode)
}

func TestHandleEvent_UnknownKindIsAcceptedAndIgnored(t *testing.T) {
	req := require.New(t)
	_, _, srv := newTestAPI(t)

	// No service expectation: the event must be dropped silently
	resp := postEvent(t, srv, `{"kind":"some-future-kind","origin_user_id":"u-1"}`)

	req.Equal(http.StatusAccepted, resp.StatusCode)
}

func TestHandleEvent_MissingOriginIsRejected(t *testing.T) {
	req := require.New(t)
	_, _, srv := newTestAPI(t)

	resp := postEvent(t, srv, `{"kind":"post-created","judul":"Halo"}`)

	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestHandleEvent_MalformedBodyIsRejected(t *testing.T) {
	req := require.New(t)
	_, _, srv := newTestAPI(t)

	resp := postEvent(t, srv, `{broken`)

	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestCountEndpoints(t *testing.T) {
	req := require.New(t)
	_, countersMock, srv := newTestAPI(t)

	countersMock.EXPECT().CountPosts().Return(5, nil)
	countersMock.EXPECT().CountComplaints().Return(2, nil)
	countersMock.EXPECT().CountAwaitingPayments().Return(1, nil)

	for path, body := range map[string]string{
		"/api/posts/count":             `{"count":5}`,
		"/api/aduan/count":             `{"count":2}`,
		"/api/payments/awaiting/count": `{"count":1}`,
	} {
		resp, err := http.Get(srv.URL + path)
		req.NoError(err)
		req.Equal(http.StatusOK, resp.StatusCode)

		buf := make([]byte, 64)
		n, _ := resp.Body.Read(buf)
		_ = resp.Body.Close()
		req.JSONEq(body, string(buf[:n]))
	}
}

func TestCountEndpoint_RepositoryFailure(t *testing.T) {
	req := require.New(t)
	_, countersMock, srv := newTestAPI(t)

	countersMock.EXPECT().CountPosts().Return(0, fmt.Errorf("badger unavailable"))

	resp, err := http.Get(srv.URL + "/api/posts/count")
	req.NoError(err)
	defer func() { _ = resp.Body.Close() }()

	req.Equal(http.StatusInternalServerError, resp.StatusCode)
}
