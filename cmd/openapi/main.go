// Command openapi writes the API's OpenAPI document without starting the server.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/JaimeStill/jobtracker/internal/api"
	"github.com/JaimeStill/jobtracker/internal/config"
	"github.com/JaimeStill/jobtracker/internal/infrastructure"
	"github.com/JaimeStill/jobtracker/pkg/openapi"
)

func main() {
	_ = godotenv.Load()

	out := flag.String("o", "", "Output file (default stdout)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	// systems are constructed but never started, so nothing connects
	infra, err := infrastructure.New(cfg)
	if err != nil {
		log.Fatal("infrastructure init failed:", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if err := openapi.Encode(w, api.Document(cfg, infra)); err != nil {
		log.Fatal("encode failed:", err)
	}
}
