package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	passwords := map[string]string{
		"admin":        "@TalentAI_admin1",
		"demo-company": "@TalentAI_corp22",
		"demo-dev":     "@TalentAI_dev333",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
