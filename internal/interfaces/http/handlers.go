package httpinterface

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auctionward/auctiond/internal/core/application"
	"github.com/auctionward/auctiond/internal/core/domain"
)

type handler struct {
	svc Services
}

func (h *handler) createAuction(w http.ResponseWriter, r *http.Request) {
	var req application.CreateAuctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.AssetID == "" || req.Seller == "" {
		writeErr(w, http.StatusBadRequest, "asset_id and seller required")
		return
	}

	info, err := h.svc.AuctionSvc.CreateAuction(r.Context(), req)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, info)
}

func (h *handler) getAuction(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]

	info, err := h.svc.AuctionSvc.GetAuction(r.Context(), assetID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *handler) getHighestBidder(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]

	bidder, amount, err := h.svc.AuctionSvc.GetHighestBidder(r.Context(), assetID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bidder": bidder,
		"amount": amount,
	})
}

func (h *handler) placeBid(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]

	var req struct {
		Bidder string `json:"bidder"`
		Amount uint64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Bidder == "" {
		writeErr(w, http.StatusBadRequest, "bidder required")
		return
	}

	info, err := h.svc.BidSvc.PlaceBid(r.Context(), assetID, req.Bidder, req.Amount)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *handler) cancelAuction(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]

	var req struct {
		Caller string `json:"caller"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.svc.SettlementSvc.Cancel(r.Context(), assetID, req.Caller); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) withdraw(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identity string `json:"identity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Identity == "" {
		writeErr(w, http.StatusBadRequest, "identity required")
		return
	}

	amount, err := h.svc.BidSvc.Withdraw(r.Context(), req.Identity)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"amount": amount})
}

func (h *handler) getLedgerBalance(w http.ResponseWriter, r *http.Request) {
	identity := mux.Vars(r)["identity"]

	balance, err := h.svc.AuctionSvc.GetLedgerBalance(r.Context(), identity)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]uint64{"balance": balance})
}

func (h *handler) checkUpkeep(w http.ResponseWriter, r *http.Request) {
	assetIDs, err := h.svc.UpkeepSvc.CheckUpkeep(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"upkeep_needed": len(assetIDs) > 0,
		"asset_ids":     assetIDs,
	})
}

func (h *handler) performUpkeep(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]

	if err := h.svc.UpkeepSvc.PerformUpkeep(r.Context(), assetID); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) fulfillRandomness(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RequestID string `json:"request_id"`
		Value     uint64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.RequestID == "" {
		writeErr(w, http.StatusBadRequest, "request_id required")
		return
	}

	if err := h.svc.SettlementSvc.Fulfill(r.Context(), req.RequestID, req.Value); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) changeFee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Caller        string `json:"caller"`
		PercentageFee uint64 `json:"percentage_fee"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.svc.OperatorSvc.ChangeFee(r.Context(), req.Caller, req.PercentageFee); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) changeFeeRecipient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Caller       string `json:"caller"`
		FeeRecipient string `json:"fee_recipient"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.svc.OperatorSvc.ChangeFeeRecipient(r.Context(), req.Caller, req.FeeRecipient); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getFeeConfig(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.OperatorSvc.GetFeeConfig(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *handler) subscribeWebhook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic    string `json:"topic"`
		Endpoint string `json:"endpoint"`
		Secret   string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	id, err := h.svc.OperatorSvc.SubscribeWebhook(req.Topic, req.Endpoint, req.Secret)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *handler) unsubscribeWebhook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.OperatorSvc.UnsubscribeWebhook(id); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) listWebhooks(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")

	subs := h.svc.OperatorSvc.ListWebhooks(topic)
	writeJSON(w, http.StatusOK, subs)
}

// writeDomainErr maps business errors onto HTTP status codes. Anything not
// recognized surfaces as an internal error.
func writeDomainErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch err {
	case domain.ErrAuctionNotFound, domain.ErrUnknownRequest:
		status = http.StatusNotFound
	case domain.ErrInvalidWindow, domain.ErrBidTooLow, domain.ErrInvalidAmount,
		domain.ErrInvalidFeeBasisPoint, domain.ErrNullFeeRecipient:
		status = http.StatusBadRequest
	case domain.ErrDenied, domain.ErrNotOwner:
		status = http.StatusForbidden
	case domain.ErrAlreadyListed, domain.ErrStateConflict, domain.ErrAuctionNotActive,
		domain.ErrWindowClosed, domain.ErrReserveMet, domain.ErrAuctionStillRunning,
		domain.ErrRequestAlreadyPending:
		status = http.StatusConflict
	case domain.ErrTransferFailed:
		status = http.StatusBadGateway
	}
	writeErr(w, status, err.Error())
}
