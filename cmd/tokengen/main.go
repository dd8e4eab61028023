// cmd/tokengen/main.go
//
// Issues an access token for an account, for local development and
// API testing. There are no login endpoints; tokens come from here or
// from an external identity layer.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/pkg/auth"
)

func main() {
	userID := flag.Uint("user", 1, "account id to issue the token for")
	email := flag.String("email", "admin@example.com", "account email claim")
	admin := flag.Bool("admin", false, "include the admin claim")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	token, err := auth.NewJWTManager(cfg).GenerateAccessToken(uint(*userID), *email, *admin)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
