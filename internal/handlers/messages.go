package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dkhalil/blurt/internal/models"
	"github.com/dkhalil/blurt/internal/service"
	"github.com/dkhalil/blurt/internal/ws"
)

type MessageHandler struct {
	Messages *service.MessageService
	Hub      *ws.Hub
}

type updateMessageRequest struct {
	Text string `json:"message_text"`
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.Message
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message, err := h.Messages.Create(req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if h.Hub != nil {
		h.Hub.Broadcast(*message)
	}
	writeJSON(w, message)
}

// GetAll always answers 200 with a JSON array; a store failure has already
// been logged and yields an empty list.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.GetAll()
	if err != nil {
		messages = []models.Message{}
	}
	writeJSON(w, messages)
}

// GetByID answers 200 either way; an absent message is an empty body.
func (h *MessageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		return
	}

	message, err := h.Messages.GetByID(id)
	if err != nil || message == nil {
		return
	}
	writeJSON(w, message)
}

// Delete answers 200 with the removed message, or 200 with an empty body when
// there was nothing to remove. Deleting twice is safe.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		return
	}

	message, err := h.Messages.Delete(id)
	if err != nil || message == nil {
		return
	}
	writeJSON(w, message)
}

func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var req updateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message, err := h.Messages.Update(id, req.Text)
	if err != nil || message == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	writeJSON(w, message)
}

func (h *MessageHandler) GetByAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountID, err := strconv.Atoi(vars["account_id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	messages, err := h.Messages.GetByAccount(accountID)
	if err != nil {
		messages = []models.Message{}
	}
	writeJSON(w, messages)
}

// pathID parses the {id} path variable. A non-numeric id on the read/delete
// routes is treated like any other absent message: 200, empty body.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}
