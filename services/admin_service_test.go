package services

import (
	"context"
	"testing"

	"healthcoach/config"
	"healthcoach/models"
)

func TestDashboardAggregates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	alice := createTestUser(t, "alice@example.com", "Alice")
	bob := createTestUser(t, "bob@example.com", "Bob")

	if _, err := RecordBMI(alice.ID, 175, 92); err != nil {
		t.Fatalf("RecordBMI: %v", err)
	}
	if _, err := UpsertDailyTracking(alice.ID, true, true, true, true); err != nil {
		t.Fatalf("upsert tracking: %v", err)
	}
	if err := RecordLogin(&alice.ID, false); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	if err := RecordLogin(nil, true); err != nil {
		t.Fatalf("RecordLogin admin: %v", err)
	}

	out, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if out.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", out.TotalUsers)
	}
	if len(out.LoginLogs) != 2 {
		t.Errorf("got %d login logs, want 2", len(out.LoginLogs))
	}

	if len(out.Users) != 2 {
		t.Fatalf("got %d user rows, want 2", len(out.Users))
	}
	rows := map[string]UserBMIRow{}
	for _, row := range out.Users {
		rows[row.FullName] = row
	}
	if row, ok := rows[alice.FullName]; !ok || row.Category != "Obese" {
		t.Errorf("unexpected row for %s: %+v", alice.FullName, row)
	}
	if row, ok := rows[bob.FullName]; !ok || row.Category != "" {
		t.Errorf("user without records should have empty BMI fields: %+v", row)
	}

	if len(out.TodayTracking) != 1 || out.TodayTracking[0].ProgressPercent != 100 {
		t.Errorf("unexpected tracking rows: %+v", out.TodayTracking)
	}
}

func TestUpdateTargetStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)
	user := createTestUser(t, "a@example.com", "A")

	if err := svc.UpdateTargetStatus(context.Background(), user.ID, models.TargetCompleted); err != nil {
		t.Fatalf("UpdateTargetStatus: %v", err)
	}

	var got models.User
	if err := config.DB.First(&got, user.ID).Error; err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if got.TargetStatus != models.TargetCompleted {
		t.Errorf("TargetStatus = %q, want Completed", got.TargetStatus)
	}
}

func TestUpdateTargetStatusValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)
	user := createTestUser(t, "a@example.com", "A")

	if err := svc.UpdateTargetStatus(context.Background(), user.ID, "Almost"); err == nil {
		t.Error("invalid status accepted")
	}
	if err := svc.UpdateTargetStatus(context.Background(), user.ID+99, models.TargetOngoing); err == nil {
		t.Error("unknown user accepted")
	}
}
