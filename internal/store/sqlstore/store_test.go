package sqlstore

import (
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kpatel/grouplift/internal/models"
)

var testStore *SQLStore

func SetupTestDB(t *testing.T) {
	var err error
	testStore, err = New("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
}

func TeardownTestDB() {
	testStore.db.Close()
}

func createTestUser(t *testing.T, email, name string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: name, Password: "pass"}
	if err := testStore.CreateUser(user); err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

func createTestGroup(t *testing.T, name, code string) int {
	t.Helper()
	id, err := testStore.CreateGroup(name, code)
	if err != nil {
		t.Fatalf("Failed to create group %s: %v", name, err)
	}
	return int(id)
}
