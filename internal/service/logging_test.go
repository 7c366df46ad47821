package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/payroll-service/internal/domain/model"
	"github.com/guttosm/payroll-service/internal/mocks"
	"github.com/guttosm/payroll-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLoggingService_CreateLog(t *testing.T) {
	tests := []struct {
		name      string
		entry     *model.LogEntry
		repoErr   error
		wantError bool
	}{
		{
			name:  "assigns id and timestamp",
			entry: &model.LogEntry{Level: "info", Message: "payroll calculated", Country: model.CountryNamibia},
		},
		{
			name:  "keeps existing id",
			entry: &model.LogEntry{ID: primitive.NewObjectID(), Level: "info", Message: "pack updated"},
		},
		{
			name:      "repository error",
			entry:     &model.LogEntry{Level: "error", Message: "boom"},
			repoErr:   errors.New("database error"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockLogsRepositoryInterface)
			originalID := tt.entry.ID
			repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
				return !doc.ID.IsZero() && !doc.Timestamp.IsZero() && doc.Message == tt.entry.Message &&
					doc.Country == string(tt.entry.Country)
			})).Return(tt.repoErr)

			err := NewLoggingService(repo).CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if !originalID.IsZero() {
				assert.Equal(t, originalID, tt.entry.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("empty batch skips repository", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		assert.NoError(t, NewLoggingService(repo).CreateLogs(context.Background(), nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("converts every entry", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2 && docs[1].ActionType == model.ActionRunPeriod && docs[1].Actor == "payroll-admin"
		})).Return(nil)

		err := NewLoggingService(repo).CreateLogs(context.Background(), []*model.LogEntry{
			{Level: "info", Message: "calculated", ActionType: model.ActionCalculate},
			{Level: "info", Message: "run completed", ActionType: model.ActionRunPeriod, Actor: "payroll-admin"},
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	opts := model.LogQueryOptions{ActionType: model.ActionUpdateTaxPack, Country: model.CountrySouthAfrica, StartTime: &start, Limit: 20}
	wantRepoOpts := repository.LogQueryOptions{ActionType: model.ActionUpdateTaxPack, Country: "ZA", StartTime: &start, Limit: 20}

	t.Run("maps documents", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, wantRepoOpts).Return([]*repository.LogEntryDocument{
			{Level: "info", Message: "pack updated", Country: "ZA", ActionType: model.ActionUpdateTaxPack, Actor: "ops",
				Fields: map[string]interface{}{"version": int32(3)}},
		}, nil)

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), opts)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, model.CountrySouthAfrica, entries[0].Country)
		assert.Equal(t, "ops", entries[0].Actor)
		assert.Equal(t, int32(3), entries[0].Fields["version"])
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, wantRepoOpts).Return(nil, errors.New("database error"))

		entries, err := NewLoggingService(repo).QueryLogs(context.Background(), opts)
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("Count", mock.Anything, repository.LogQueryOptions{Level: "error"}).Return(int64(4), nil)

	count, err := NewLoggingService(repo).CountLogs(context.Background(), model.LogQueryOptions{Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
