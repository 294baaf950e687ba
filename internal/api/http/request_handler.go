package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"seller-wallet-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type RequestHandler struct {
	requestSvc service.RequestService
	sellerSvc  service.SellerService
}

func NewRequestHandler(requestSvc service.RequestService, sellerSvc service.SellerService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc, sellerSvc: sellerSvc}
}

type createCreditRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type chargeRequest struct {
	PhoneNumber string          `json:"phone_number"`
	Amount      decimal.Decimal `json:"amount"`
}

func (h *RequestHandler) CreateCreditRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.requestSvc.CreateCreditRequest(r.Context(), claims.SellerID, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RequestHandler) AcceptCreditRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	txn, err := h.requestSvc.AcceptCreditRequest(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

func (h *RequestHandler) RejectCreditRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := h.requestSvc.RejectCreditRequest(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) ChargePhoneNumber(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req chargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PhoneNumber == "" {
		writeError(w, http.StatusBadRequest, "phone_number is required")
		return
	}

	txn, err := h.requestSvc.ChargePhoneNumber(r.Context(), claims.SellerID, req.PhoneNumber, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

func (h *RequestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	seller, err := h.sellerSvc.GetProfile(r.Context(), claims.SellerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seller)
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}
