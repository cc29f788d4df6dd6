// One-off: JWT_SECRET=... go run ./scripts/gentoken <userID> <email>
// Prints a signed access token for manual API calls (curl, swagger UI).
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bookmarks/internal/auth"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}
	userID := int64(1)
	email := "dev@localhost"
	if len(os.Args) > 1 {
		id, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "userID must be an integer")
			os.Exit(1)
		}
		userID = id
	}
	if len(os.Args) > 2 {
		email = os.Args[2]
	}

	tok, err := auth.NewTokenManager([]byte(secret), time.Hour).Issue(userID, email)
	if err != nil {
		panic(err)
	}
	fmt.Print(tok)
}
