// Command hashsecret prints the bcrypt hash of a provider secret for use
// as PROVIDER_SECRET_HASH.
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/rakhadavin/dukcapil-admin/internal/utils"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: hashsecret [-cost N] <secret>")
	}
	hash, err := utils.HashSecret(flag.Arg(0), *cost)
	if err != nil {
		log.Fatalf("hash secret: %v", err)
	}
	fmt.Println(hash)
}
