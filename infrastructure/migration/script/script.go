package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
)

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func main() {
	reset := flag.Bool("reset", false, "apaga agentes, KPIs, configurações e notas antes do seed")
	seed := flag.Bool("seed", true, "grava agentes e configuração iniciais")
	flag.Parse()

	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao abrir conexão: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ERRO ao conectar ao banco: %v", err)
	}

	startTime := time.Now()

	if err := migration.Run(ctx, db); err != nil {
		log.Printf("ERRO ao aplicar migrações: %v", err)
		os.Exit(1)
	}

	if *seed {
		if err := migration.Seed(ctx, db, *reset); err != nil {
			log.Printf("ERRO ao gravar seed: %v", err)
			os.Exit(1)
		}
	}

	log.Printf("Migração concluída em %v!", time.Since(startTime))
}
