package httpinterface

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/auctionward/auctiond/internal/core/application"
)

// Services groups the application services exposed by the HTTP interface.
type Services struct {
	AuctionSvc    application.AuctionService
	BidSvc        application.BidService
	SettlementSvc application.SettlementService
	UpkeepSvc     application.UpkeepService
	OperatorSvc   application.OperatorService
}

// NewServer returns the engine's HTTP server with every route registered.
func NewServer(port int, svc Services) *http.Server {
	h := &handler{svc}

	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/auctions", h.createAuction).Methods(http.MethodPost)
	v1.HandleFunc("/auctions/{assetId}", h.getAuction).Methods(http.MethodGet)
	v1.HandleFunc("/auctions/{assetId}/highest-bidder", h.getHighestBidder).
		Methods(http.MethodGet)
	v1.HandleFunc("/auctions/{assetId}/bids", h.placeBid).Methods(http.MethodPost)
	v1.HandleFunc("/auctions/{assetId}/cancel", h.cancelAuction).
		Methods(http.MethodPost)
	v1.HandleFunc("/withdrawals", h.withdraw).Methods(http.MethodPost)
	v1.HandleFunc("/ledger/{identity}", h.getLedgerBalance).Methods(http.MethodGet)
	v1.HandleFunc("/upkeep", h.checkUpkeep).Methods(http.MethodGet)
	v1.HandleFunc("/upkeep/{assetId}", h.performUpkeep).Methods(http.MethodPost)
	v1.HandleFunc("/oracle/fulfill", h.fulfillRandomness).Methods(http.MethodPost)
	v1.HandleFunc("/admin/fee", h.changeFee).Methods(http.MethodPost)
	v1.HandleFunc("/admin/fee-recipient", h.changeFeeRecipient).
		Methods(http.MethodPost)
	v1.HandleFunc("/admin/fee", h.getFeeConfig).Methods(http.MethodGet)
	v1.HandleFunc("/webhooks", h.subscribeWebhook).Methods(http.MethodPost)
	v1.HandleFunc("/webhooks", h.listWebhooks).Methods(http.MethodGet)
	v1.HandleFunc("/webhooks/{id}", h.unsubscribeWebhook).Methods(http.MethodDelete)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
