package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCreateClientAppliesDefaults(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateClientRequest{
		Name:  "Aibek",
		Phone: "+996700000001",
		Stage: "lead",
	})
	require.NoError(t, err)
	assert.Equal(t, "primer@gmail.com", resp.Email)
	assert.Equal(t, "paid", resp.Payment)
	assert.Equal(t, "2200", resp.Price)
}

func TestCreateClientRejectsDuplicate(t *testing.T) {
	repo := newStubClientRepo()
	repo.duplicates[dedupeKey("Aibek", strp("boxing"), strp("March"), strp("2026"))] = true
	svc := NewClientService(repo)

	_, err := svc.Create(context.Background(), dto.CreateClientRequest{
		Name:          "Aibek",
		Phone:         "+996700000001",
		Stage:         "lead",
		SportCategory: strp("boxing"),
		Month:         strp("March"),
		Year:          strp("2026"),
	})
	assert.ErrorIs(t, err, ErrDuplicateClient)
}

func TestCreateClientSameNameDifferentMonth(t *testing.T) {
	repo := newStubClientRepo()
	repo.duplicates[dedupeKey("Aibek", strp("boxing"), strp("March"), strp("2026"))] = true
	svc := NewClientService(repo)

	// Same person re-enrolling in April is a new record, not a duplicate.
	_, err := svc.Create(context.Background(), dto.CreateClientRequest{
		Name:          "Aibek",
		Phone:         "+996700000001",
		Stage:         "lead",
		SportCategory: strp("boxing"),
		Month:         strp("April"),
		Year:          strp("2026"),
	})
	assert.NoError(t, err)
}

func TestCleanupUsesRetentionWindow(t *testing.T) {
	repo := newStubClientRepo()
	repo.deleteCount = 7
	svc := NewClientService(repo)

	resp, err := svc.Cleanup(context.Background(), 60)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Deleted)
	assert.Equal(t, "7 clients deleted.", resp.Message)

	wantCutoff := time.Now().AddDate(0, 0, -60)
	assert.WithinDuration(t, wantCutoff, repo.deletedBefore, time.Minute)
}

func TestCleanupDefaultsRetention(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo)

	_, err := svc.Cleanup(context.Background(), 0)
	require.NoError(t, err)
	wantCutoff := time.Now().AddDate(0, 0, -60)
	assert.WithinDuration(t, wantCutoff, repo.deletedBefore, time.Minute)
}

func TestImportCSV(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo)

	csvData := strings.Join([]string{
		"name,email,phone,stage,payment,price,sport_category,trainer,year,month,day,comment",
		"Aida,aida@example.com,+996700000002,active,paid,2500,gym,Marat,2026,March,12,vip",
		"Nurlan,,+996700000003,lead,,,,,,,,",
	}, "\n")

	resp, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)

	require.Len(t, repo.batched, 2)
	assert.Equal(t, "Aida", repo.batched[0].Name)
	require.NotNil(t, repo.batched[0].Trainer)
	assert.Equal(t, "Marat", *repo.batched[0].Trainer)
	// Empty optional columns come through as NULL, not empty strings.
	assert.Nil(t, repo.batched[1].SportCategory)
}

func TestImportCSVMissingRequiredColumn(t *testing.T) {
	svc := NewClientService(newStubClientRepo())

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("name,email,phone\nAida,a@b.c,123"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage")
}

func TestUpdateClientPartial(t *testing.T) {
	repo := newStubClientRepo()
	c := model.Client{Name: "Erlan", Email: "erlan@example.com", Phone: "111", Stage: "lead"}
	require.NoError(t, repo.Create(context.Background(), &c))
	svc := NewClientService(repo)

	resp, err := svc.Update(context.Background(), c.ID, dto.UpdateClientRequest{Stage: strp("active")})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Stage)
	assert.Equal(t, "Erlan", resp.Name, "untouched fields survive a partial update")
}

func TestGetClientNotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo())
	_, err := svc.Get(context.Background(), mustUUID(t, "1b671a64-40d5-491e-99b0-da01ff1f3341"))
	assert.ErrorIs(t, err, ErrClientNotFound)
}
