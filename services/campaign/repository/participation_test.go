package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

func setupCampaignRepoTest(t *testing.T) (*CampaignRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &CampaignRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func storedParticipation() *models.Participation {
	return &models.Participation{
		ID:                   uuid.New(),
		CampaignID:           uuid.New(),
		InfluencerID:         uuid.New(),
		Phase:                models.PhaseProduction,
		RequirementChecklist: map[string]bool{"mencionar a marca": false},
		Version:              2,
		UpdatedAt:            models.Now(),
	}
}

func TestUpdateParticipation_BumpsVersion(t *testing.T) {
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	p := storedParticipation()

	mock.ExpectExec("UPDATE participations").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), p.ID, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateParticipation(context.Background(), p, 2)

	assert.NoError(t, err)
	assert.Equal(t, 3, p.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateParticipation_VersionConflict(t *testing.T) {
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	p := storedParticipation()

	// another caller already advanced the row, the guarded update misses
	mock.ExpectExec("UPDATE participations").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), p.ID, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateParticipation(context.Background(), p, 2)

	assert.ErrorIs(t, err, apperrors.ErrConcurrentUpdate)
	assert.Equal(t, 2, p.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetParticipation_NotFound(t *testing.T) {
	repo, mock, cleanup := setupCampaignRepoTest(t)
	defer cleanup()

	campaignID := uuid.New()
	influencerID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM participations").
		WithArgs(campaignID, influencerID).
		WillReturnError(sql.ErrNoRows)

	participation, err := repo.GetParticipation(context.Background(), campaignID, influencerID)

	assert.Nil(t, participation)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
