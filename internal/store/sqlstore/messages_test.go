package sqlstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveMessage(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := createTestUser(t, "u1@example.com", "Alice")
	groupID := createTestGroup(t, "Crew", "ABC123")

	msg, err := testStore.SaveMessage(groupID, user.ID, "hello")
	require.NoError(t, err)
	require.NotZero(t, msg.ID)
	require.Equal(t, groupID, msg.GroupID)
	require.Equal(t, user.ID, msg.SenderID)
	require.Equal(t, "Alice", msg.SenderName)
	require.Equal(t, "hello", msg.Content)
	require.False(t, msg.Timestamp.IsZero())
}

func TestGetGroupMessagesOrder(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	alice := createTestUser(t, "u1@example.com", "Alice")
	bob := createTestUser(t, "u2@example.com", "Bob")
	groupID := createTestGroup(t, "Crew", "ABC123")

	senders := []int{alice.ID, bob.ID, alice.ID, bob.ID, alice.ID}
	for i, sender := range senders {
		_, err := testStore.SaveMessage(groupID, sender, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	// Round-trip: retrieval reproduces the exact send sequence.
	messages, err := testStore.GetGroupMessages(groupID, 0, 0)
	require.NoError(t, err)
	require.Len(t, messages, len(senders))
	for i, m := range messages {
		require.Equal(t, fmt.Sprintf("msg %d", i), m.Content)
		require.Equal(t, senders[i], m.SenderID)
	}

	count, err := testStore.CountGroupMessages(groupID)
	require.NoError(t, err)
	require.Equal(t, len(senders), count)
}

func TestGetGroupMessagesPagination(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := createTestUser(t, "u1@example.com", "Alice")
	groupID := createTestGroup(t, "Crew", "ABC123")

	for i := 0; i < 5; i++ {
		_, err := testStore.SaveMessage(groupID, user.ID, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	page, err := testStore.GetGroupMessages(groupID, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "msg 1", page[0].Content)
	require.Equal(t, "msg 2", page[1].Content)
}

func TestMessagesScopedToGroup(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	user := createTestUser(t, "u1@example.com", "Alice")
	g1 := createTestGroup(t, "Crew 1", "AAAAA1")
	g2 := createTestGroup(t, "Crew 2", "AAAAA2")

	_, err := testStore.SaveMessage(g1, user.ID, "for group 1")
	require.NoError(t, err)

	messages, err := testStore.GetGroupMessages(g2, 0, 0)
	require.NoError(t, err)
	require.Empty(t, messages)
}
