package service

import (
	"strings"
	"testing"

	"github.com/lockbox/lockbox-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Strength == "" {
		t.Error("expected strength label to be populated")
	}
	if resp.MaxScore != 10 {
		t.Errorf("expected max score 10, got %d", resp.MaxScore)
	}
}

func TestGenerate_LowercaseAndNumbersOnly(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    12,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(true),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			t.Errorf("unexpected character %q in lowercase+numbers password", c)
		}
	}
}

func TestGenerate_ExcludeSimilar(t *testing.T) {
	svc := NewGeneratorService()
	for i := 0; i < 20; i++ {
		resp, err := svc.Generate(model.GenerateRequest{Length: 50, ExcludeSimilar: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.ContainsAny(resp.Password, "il1Lo0O") {
			t.Errorf("password %q contains an excluded similar character", resp.Password)
		}
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService()
	if _, err := svc.Generate(model.GenerateRequest{Length: 3}); err == nil {
		t.Fatal("expected error for length too short")
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	if _, err := svc.Generate(model.GenerateRequest{Length: 51}); err == nil {
		t.Fatal("expected error for length too long")
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err == nil {
		t.Fatal("expected error when no character types selected")
	}
}
