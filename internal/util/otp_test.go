package util

import (
	"testing"
	"unicode"
)

func TestGenerateNumericOTP(t *testing.T) {
	otp, err := GenerateNumericOTP(6)
	if err != nil {
		t.Fatalf("GenerateNumericOTP returned error: %v", err)
	}
	if len(otp) != 6 {
		t.Fatalf("expected 6 digits, got %d", len(otp))
	}
	for _, r := range otp {
		if !unicode.IsDigit(r) {
			t.Fatalf("expected only digits, got %q", otp)
		}
	}
}

func TestGenerateNumericOTPDefaultsLength(t *testing.T) {
	otp, err := GenerateNumericOTP(0)
	if err != nil {
		t.Fatalf("GenerateNumericOTP returned error: %v", err)
	}
	if len(otp) != 6 {
		t.Fatalf("expected default length 6, got %d", len(otp))
	}
}

func TestDeriveAndVerifyOTP(t *testing.T) {
	hash, salt, err := DeriveOTP("482913")
	if err != nil {
		t.Fatalf("DeriveOTP returned error: %v", err)
	}
	if len(hash) == 0 || len(salt) == 0 {
		t.Fatalf("expected hash and salt to be populated")
	}
	if !VerifyOTP("482913", salt, hash) {
		t.Fatalf("expected otp verification to succeed")
	}
	if VerifyOTP("482914", salt, hash) {
		t.Fatalf("expected otp verification to fail for wrong code")
	}
}

func TestVerifyOTPRequiresFreshSalt(t *testing.T) {
	hash1, salt1, err := DeriveOTP("111111")
	if err != nil {
		t.Fatalf("DeriveOTP returned error: %v", err)
	}
	hash2, salt2, err := DeriveOTP("111111")
	if err != nil {
		t.Fatalf("DeriveOTP returned error: %v", err)
	}
	if string(salt1) == string(salt2) {
		t.Fatalf("expected a fresh salt per derivation")
	}
	if string(hash1) == string(hash2) {
		t.Fatalf("expected distinct hashes under distinct salts")
	}
}

func TestHashOTPEmptyInput(t *testing.T) {
	if _, err := HashOTP("", []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error when otp empty")
	}
	if _, err := HashOTP("123456", nil); err == nil {
		t.Fatalf("expected error when salt empty")
	}
}

func TestVerifyOTPEmptyInputs(t *testing.T) {
	if VerifyOTP("", []byte{1}, []byte{2}) {
		t.Fatalf("expected verification to fail for empty otp")
	}
	if VerifyOTP("123456", nil, []byte{2}) {
		t.Fatalf("expected verification to fail for empty salt")
	}
	if VerifyOTP("123456", []byte{1}, nil) {
		t.Fatalf("expected verification to fail for empty hash")
	}
}
