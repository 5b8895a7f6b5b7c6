package services

import (
	"testing"
)

func TestSendAdminMessageStoredUnread(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "A")

	m, err := SendAdminMessage(1, user.ID, "Keep up the water intake!")
	if err != nil {
		t.Fatalf("SendAdminMessage: %v", err)
	}
	if m.IsRead {
		t.Error("new message should be unread")
	}

	msgs, err := ListUserMessages(user.ID, 10)
	if err != nil {
		t.Fatalf("ListUserMessages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Message != "Keep up the water intake!" {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}

func TestSendAdminMessageValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "A")

	if _, err := SendAdminMessage(1, user.ID, "   "); err == nil {
		t.Error("blank message accepted")
	}
	if _, err := SendAdminMessage(1, user.ID+99, "hello"); err == nil {
		t.Error("message to unknown user accepted")
	}
}

func TestListUserMessagesNewestFirstAndLimited(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "A")

	for i := 0; i < 12; i++ {
		if _, err := SendAdminMessage(1, user.ID, "note"); err != nil {
			t.Fatalf("SendAdminMessage: %v", err)
		}
	}

	msgs, err := ListUserMessages(user.ID, 10)
	if err != nil {
		t.Fatalf("ListUserMessages: %v", err)
	}
	if len(msgs) != 10 {
		t.Fatalf("got %d messages, want 10", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].ID > msgs[i-1].ID {
			t.Fatal("messages not newest first")
		}
	}
}

func TestMarkMessageRead(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "A")
	other := createTestUser(t, "b@example.com", "B")

	m, err := SendAdminMessage(1, user.ID, "note")
	if err != nil {
		t.Fatalf("SendAdminMessage: %v", err)
	}

	// another user cannot mark it
	if err := MarkMessageRead(other.ID, m.ID); err == nil {
		t.Error("foreign message marked read")
	}

	if err := MarkMessageRead(user.ID, m.ID); err != nil {
		t.Fatalf("MarkMessageRead: %v", err)
	}
	msgs, _ := ListUserMessages(user.ID, 1)
	if len(msgs) != 1 || !msgs[0].IsRead {
		t.Errorf("message not marked read: %+v", msgs)
	}
}
