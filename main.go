package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dkhalil/blurt/internal/config"
	"github.com/dkhalil/blurt/internal/handlers"
	"github.com/dkhalil/blurt/internal/logging"
	"github.com/dkhalil/blurt/internal/middleware"
	"github.com/dkhalil/blurt/internal/service"
	"github.com/dkhalil/blurt/internal/store/sqlstore"
	"github.com/dkhalil/blurt/internal/ws"
)

var (
	addr    = flag.String("addr", "", "http service address (overrides config)")
	cfgFile = flag.String("config", "", "path to config file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	logging.Setup(cfg.Log)

	store, err := sqlstore.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	accounts := service.NewAccountService(store)
	messages := service.NewMessageService(store, accounts)

	hub := ws.NewHub()
	go hub.Run()

	accountHandler := &handlers.AccountHandler{Accounts: accounts}
	messageHandler := &handlers.MessageHandler{Messages: messages, Hub: hub}

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/register", accountHandler.Register).Methods("POST")
	r.HandleFunc("/login", accountHandler.Login).Methods("POST")
	r.HandleFunc("/messages", messageHandler.Create).Methods("POST")
	r.HandleFunc("/messages", messageHandler.GetAll).Methods("GET")
	r.HandleFunc("/messages/{id}", messageHandler.GetByID).Methods("GET")
	r.HandleFunc("/messages/{id}", messageHandler.Delete).Methods("DELETE")
	r.HandleFunc("/messages/{id}", messageHandler.Update).Methods("PATCH")
	r.HandleFunc("/accounts/{account_id}/messages", messageHandler.GetByAccount).Methods("GET")

	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	slog.Info("starting server", "addr", cfg.Addr, "driver", cfg.DB.Driver)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
