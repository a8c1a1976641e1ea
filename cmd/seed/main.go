package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-queue/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-queue/internal/db"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// Cria o admin inicial e um catálogo básico; idempotente por login/nome.
func main() {
	cfg := config.Load()

	db := dbpkg.NewDB(cfg)
	defer dbpkg.Close(db)

	login := getenv("ADMIN_LOGIN", "admin")
	senha := getenv("ADMIN_PASSWORD", "admin123")

	var count int64
	db.Model(&models.Admin{}).Where("login = ?", login).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		admin := models.Admin{
			Nome:      getenv("ADMIN_NAME", "Administrador"),
			Login:     login,
			SenhaHash: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to create admin: %v", err)
		}
		log.Printf("admin %q created", login)
	} else {
		log.Printf("admin %q already exists", login)
	}

	services := []models.Service{
		{Nome: "Corte", Descricao: "Corte de cabelo", Preco: f(40), TempoEstimado: i(30), Ativo: true},
		{Nome: "Barba", Descricao: "Barba completa", Preco: f(30), TempoEstimado: i(20), Ativo: true},
		{Nome: "Corte + Barba", Descricao: "Combo", Preco: f(60), TempoEstimado: i(45), Ativo: true},
	}

	for _, s := range services {
		var existing int64
		db.Model(&models.Service{}).Where("nome = ?", s.Nome).Count(&existing)
		if existing > 0 {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Fatalf("failed to seed service %q: %v", s.Nome, err)
		}
		log.Printf("service %q created", s.Nome)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func f(v float64) *float64 { return &v }
func i(v int) *int         { return &v }
