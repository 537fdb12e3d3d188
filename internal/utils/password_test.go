package utils

import "testing"

func TestHashAndVerifySecret(t *testing.T) {
	hash, err := HashSecret("s3cret", 4)
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals plain text")
	}
	if !VerifySecret(hash, "s3cret") {
		t.Fatal("correct secret rejected")
	}
	if VerifySecret(hash, "wrong") {
		t.Fatal("wrong secret accepted")
	}
}
