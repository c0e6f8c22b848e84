// Command genhash prints password hashes for seeding accounts by hand:
//
//	go run ./scripts/genhash.go 'motdepasse1' 'autre-mot-de-passe'
package main

import (
	"fmt"
	"os"

	"github.com/starkspartacus/job-sub000/pkg/auth"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(2)
	}

	for _, pass := range os.Args[1:] {
		hash, err := auth.HashPassword(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, hash)
	}
}
