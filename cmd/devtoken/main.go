// Command devtoken mints an HS256 bearer token for local testing, signed with
// AUTH_JWT_SECRET (loaded from .env when present).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"acaradashboard/internal/adapters/auth"
)

func main() {
	sub := flag.String("sub", "", "user ID placed in the sub claim (required)")
	email := flag.String("email", "", "optional email claim, enables notification emails")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv("AUTH_JWT_SECRET")
	if *sub == "" || secret == "" {
		fmt.Fprintln(os.Stderr, "usage: AUTH_JWT_SECRET=... devtoken -sub <user-id> [-email <addr>] [-ttl 24h]")
		os.Exit(2)
	}

	token, err := auth.NewJWTIssuer(secret, os.Getenv("AUTH_JWT_ISSUER")).Issue(*sub, *email, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
