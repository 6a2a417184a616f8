package sqlstore

import (
	"testing"
)

func TestCreateAccount(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	account, err := testStore.CreateAccount("alice", "password123")
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	if account.ID == 0 {
		t.Error("Expected non-zero account ID")
	}
	if account.Username != "alice" {
		t.Errorf("Expected username 'alice', got '%s'", account.Username)
	}

	// Duplicate username hits the UNIQUE constraint
	_, err = testStore.CreateAccount("alice", "password123")
	if err == nil {
		t.Error("Expected error when creating duplicate account, got nil")
	}
}

func TestGetAccountByUsername(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateAccount("alice", "password123")

	account, err := testStore.GetAccountByUsername("alice")
	if err != nil {
		t.Fatalf("Failed to get account: %v", err)
	}
	if account == nil || account.Username != "alice" {
		t.Errorf("Expected account 'alice', got %+v", account)
	}

	account, err = testStore.GetAccountByUsername("nonexistent")
	if err != nil {
		t.Errorf("Expected no error for missing account, got %v", err)
	}
	if account != nil {
		t.Errorf("Expected nil for missing account, got %+v", account)
	}
}

func TestGetAccountByCredentials(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	created, _ := testStore.CreateAccount("alice", "password123")

	account, err := testStore.GetAccountByCredentials("alice", "password123")
	if err != nil {
		t.Fatalf("Failed to get account: %v", err)
	}
	if account == nil || account.ID != created.ID {
		t.Errorf("Expected account %d, got %+v", created.ID, account)
	}

	// Both fields must match exactly
	account, _ = testStore.GetAccountByCredentials("alice", "wrong")
	if account != nil {
		t.Errorf("Expected nil for wrong password, got %+v", account)
	}
}

func TestGetAccountByID(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	created, _ := testStore.CreateAccount("alice", "password123")

	account, err := testStore.GetAccountByID(created.ID)
	if err != nil {
		t.Fatalf("Failed to get account: %v", err)
	}
	if account == nil || account.Username != "alice" {
		t.Errorf("Expected account 'alice', got %+v", account)
	}

	account, _ = testStore.GetAccountByID(9999)
	if account != nil {
		t.Errorf("Expected nil for missing id, got %+v", account)
	}
}
