package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/ISSA-Motomu/Study-Guardian/internal/config"
	"github.com/ISSA-Motomu/Study-Guardian/internal/server"
)

func main() {
	_ = godotenv.Load()
	app := config.AppFromEnv()

	handler, err := server.NewHandler(server.Options{
		DataDir: app.DataDir,
		Logger:  log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}

	log.Printf("sync server listening on %s", app.ListenAddr)
	log.Fatal(http.ListenAndServe(app.ListenAddr, handler))
}
