package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akyairhashvil/sprintplanner/internal/models"
)

// VaultExport bundles every stored record for backup or migration.
type VaultExport struct {
	ActiveSprint     *models.Sprint                            `json:"active_sprint,omitempty"`
	CompletedSprints []models.Sprint                           `json:"completed_sprints"`
	DailyCheckins    map[string]map[string]models.DailyCheckin `json:"daily_checkins"`
}

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

// ExportVault serializes the three records to a single JSON payload,
// optionally encrypted with the given passphrase.
func (d *DB) ExportVault(ctx context.Context, opts ExportOptions) ([]byte, error) {
	export := VaultExport{
		CompletedSprints: []models.Sprint{},
		DailyCheckins:    map[string]map[string]models.DailyCheckin{},
	}

	if raw, ok, err := d.Get(ctx, KeyActiveSprint); err != nil {
		return nil, err
	} else if ok {
		var s models.Sprint
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("export active sprint: %w", err)
		}
		export.ActiveSprint = &s
	}

	if raw, ok, err := d.Get(ctx, KeyCompletedSprints); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &export.CompletedSprints); err != nil {
			return nil, fmt.Errorf("export completed sprints: %w", err)
		}
	}

	if raw, ok, err := d.Get(ctx, KeyDailyCheckins); err != nil {
		return nil, err
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &export.DailyCheckins); err != nil {
			return nil, fmt.Errorf("export daily checkins: %w", err)
		}
	}

	jsonData, err := json.Marshal(export)
	if err != nil {
		return nil, err
	}
	if opts.EncryptOutput && opts.Passphrase != "" {
		return encryptData(jsonData, opts.Passphrase)
	}
	return jsonData, nil
}

// ImportVault loads exported data into the store, replacing the current
// records. Pass the passphrase when the payload was exported encrypted.
func (d *DB) ImportVault(ctx context.Context, payload []byte, passphrase string) error {
	if isEncryptedPayload(payload) {
		decrypted, err := decryptData(payload, passphrase)
		if err != nil {
			return fmt.Errorf("import vault: %w", err)
		}
		payload = decrypted
	}

	var export VaultExport
	if err := json.Unmarshal(payload, &export); err != nil {
		return fmt.Errorf("import vault: %w", err)
	}

	if export.ActiveSprint != nil {
		raw, err := json.Marshal(export.ActiveSprint)
		if err != nil {
			return fmt.Errorf("import active sprint: %w", err)
		}
		if err := d.Set(ctx, KeyActiveSprint, string(raw)); err != nil {
			return err
		}
	} else if err := d.Remove(ctx, KeyActiveSprint); err != nil {
		return err
	}

	raw, err := json.Marshal(export.CompletedSprints)
	if err != nil {
		return fmt.Errorf("import completed sprints: %w", err)
	}
	if err := d.Set(ctx, KeyCompletedSprints, string(raw)); err != nil {
		return err
	}

	raw, err = json.Marshal(export.DailyCheckins)
	if err != nil {
		return fmt.Errorf("import daily checkins: %w", err)
	}
	return d.Set(ctx, KeyDailyCheckins, string(raw))
}
