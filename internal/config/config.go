package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DBDSN       string
	TemplateDir string
	LogFile     string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = ":memory:" // catalog lives only for the process lifetime
	}
	tpl := os.Getenv("TEMPLATE_DIR")
	if tpl == "" {
		tpl = "./web/templates"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, TemplateDir: tpl, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s TEMPLATE_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TemplateDir, cfg.LogFile)
	return cfg
}
