// hashgen prints bcrypt hashes for seeding user_account rows.
package main

import (
	"fmt"
	"log"
	"os"

	"healthhub/internal/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hashgen <password> [password ...]")
		os.Exit(1)
	}

	for _, password := range os.Args[1:] {
		hash, err := utils.HashPassword(password)
		if err != nil {
			log.Fatalf("Failed to hash %q: %v", password, err)
		}
		fmt.Printf("%s: %s\n", password, hash)
	}
}
