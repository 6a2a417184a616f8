package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dkhalil/blurt/internal/models"
	"github.com/dkhalil/blurt/internal/service"
)

type AccountHandler struct {
	Accounts *service.AccountService
}

// Register handles POST /register. Failures of any kind come back as a bare
// 400; the body is only written on success.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.Account
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	account, err := h.Accounts.Register(req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	writeJSON(w, account)
}

// Login handles POST /login. Bad input, wrong password and unknown username
// are all a bare 401.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.Account
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	account, err := h.Accounts.Login(req)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	writeJSON(w, account)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
