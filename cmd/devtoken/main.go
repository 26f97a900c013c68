package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ivankudzin/roomshare/backend/internal/config"
	"github.com/ivankudzin/roomshare/backend/internal/pkg/validate"
	authsvc "github.com/ivankudzin/roomshare/backend/internal/services/auth"
)

func main() {
	seeker := flag.String("seeker", "", "seeker uuid")
	role := flag.String("role", authsvc.RoleSeeker, "token role")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	seekerID, ok := validate.UUID(*seeker)
	if !ok {
		log.Fatal("use -seeker to pass a seeker uuid")
	}

	cfgPath := os.Getenv("APP_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, *ttl)
	token, expiresAt, err := tokens.GenerateAccessToken(seekerID, *role)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
}
