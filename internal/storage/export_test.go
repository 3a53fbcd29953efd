package storage

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

const activeSprintJSON = `{"id":"1704240000000","name":"Midterms","goals":[{"id":"g1","description":"Math","priority":"Medium","estimatedHours":2,"actualHours":1,"completed":false}],"status":"active"}`

func TestExportVaultPlain(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	if err := db.Set(ctx, KeyActiveSprint, activeSprintJSON); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	payload, err := db.ExportVault(ctx, ExportOptions{})
	if err != nil {
		t.Fatalf("ExportVault failed: %v", err)
	}

	var export VaultExport
	if err := json.Unmarshal(payload, &export); err != nil {
		t.Fatalf("export payload not valid JSON: %v", err)
	}
	if export.ActiveSprint == nil || export.ActiveSprint.Name != "Midterms" {
		t.Fatalf("active sprint missing from export: %+v", export.ActiveSprint)
	}
	if export.CompletedSprints == nil || export.DailyCheckins == nil {
		t.Fatalf("expected empty collections, not null")
	}
}

func TestExportImportRoundtrip(t *testing.T) {
	ctx := context.Background()
	src := setupTestDB(t)
	if err := src.Set(ctx, KeyActiveSprint, activeSprintJSON); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := src.Set(ctx, KeyCompletedSprints, `[{"id":"old","name":"Week 0","status":"completed"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	payload, err := src.ExportVault(ctx, ExportOptions{})
	if err != nil {
		t.Fatalf("ExportVault failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.ImportVault(ctx, payload, ""); err != nil {
		t.Fatalf("ImportVault failed: %v", err)
	}
	value, ok, err := dst.Get(ctx, KeyCompletedSprints)
	if err != nil || !ok {
		t.Fatalf("completed sprints missing after import: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(value, "Week 0") {
		t.Fatalf("imported history lost data: %s", value)
	}
	if _, ok, _ := dst.Get(ctx, KeyActiveSprint); !ok {
		t.Fatalf("active sprint missing after import")
	}
}

func TestExportEncryptedRoundtrip(t *testing.T) {
	ctx := context.Background()
	src := setupTestDB(t)
	if err := src.Set(ctx, KeyActiveSprint, activeSprintJSON); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	payload, err := src.ExportVault(ctx, ExportOptions{EncryptOutput: true, Passphrase: "Correct1Horse"})
	if err != nil {
		t.Fatalf("encrypted export failed: %v", err)
	}
	if strings.Contains(string(payload), "Midterms") {
		t.Fatalf("encrypted payload leaks plaintext")
	}
	if !isEncryptedPayload(payload) {
		t.Fatalf("payload not marked encrypted")
	}

	dst := setupTestDB(t)
	if err := dst.ImportVault(ctx, payload, "Correct1Horse"); err != nil {
		t.Fatalf("import of encrypted payload failed: %v", err)
	}
	if _, ok, _ := dst.Get(ctx, KeyActiveSprint); !ok {
		t.Fatalf("active sprint missing after encrypted import")
	}
}

func TestImportEncryptedWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	src := setupTestDB(t)
	if err := src.Set(ctx, KeyActiveSprint, activeSprintJSON); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	payload, err := src.ExportVault(ctx, ExportOptions{EncryptOutput: true, Passphrase: "Correct1Horse"})
	if err != nil {
		t.Fatalf("encrypted export failed: %v", err)
	}

	dst := setupTestDB(t)
	if err := dst.ImportVault(ctx, payload, "wrong"); err == nil {
		t.Fatalf("expected error for wrong passphrase")
	}
	if err := dst.ImportVault(ctx, payload, ""); err == nil {
		t.Fatalf("expected error for missing passphrase")
	}
}
