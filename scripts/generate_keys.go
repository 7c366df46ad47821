//go:build ignore

// This script generates API keys in the API_KEYS format, one per client.
// Run with: go run scripts/generate_keys.go payroll-admin hr-portal
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	clients := os.Args[1:]
	if len(clients) == 0 {
		clients = []string{"api"}
	}

	fmt.Println("=== Payroll Service API Key Generator ===")
	fmt.Println()

	entries := make([]string, 0, len(clients))
	for _, client := range clients {
		if strings.ContainsAny(client, ":,") {
			fmt.Fprintf(os.Stderr, "Client name %q must not contain ':' or ','\n", client)
			os.Exit(1)
		}
		// 24 bytes = 192 bits
		key, err := generateSecureKey(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating key for %s: %v\n", client, err)
			os.Exit(1)
		}
		entries = append(entries, client+":"+key)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS=%s\n", strings.Join(entries, ","))
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
