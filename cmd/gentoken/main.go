// cmd/gentoken mints a bearer token signed with JWT_SECRET.
// Uso: go run ./cmd/gentoken -sub caja-1 -nombre "Caja 1" -rol cajero
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/config"
	"github.com/ErickMayorgaR/Prueba-Genesis/internal/middleware"
)

func main() {
	sub := flag.String("sub", "", "subject del token (identificador del usuario o terminal)")
	nombre := flag.String("nombre", "", "nombre a mostrar")
	rol := flag.String("rol", middleware.RolCajero, "cajero | supervisor | administrador")
	horas := flag.Int("horas", 0, "vigencia en horas (default JWT_EXPIRATION_HOURS)")
	flag.Parse()

	if *sub == "" {
		fmt.Fprintln(os.Stderr, "gentoken: -sub es requerido")
		os.Exit(2)
	}
	if !middleware.RolValido(*rol) {
		fmt.Fprintf(os.Stderr, "gentoken: rol desconocido %q\n", *rol)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gentoken:", err)
		os.Exit(1)
	}
	ttl := time.Duration(cfg.JWTExpirationHours) * time.Hour
	if *horas > 0 {
		ttl = time.Duration(*horas) * time.Hour
	}

	token, err := middleware.GenerarToken(cfg.JWTSecret, *sub, *nombre, *rol, ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gentoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
