package technician

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/fleet-maintenance/internal/model"
	"github.com/you-humble/fleet-maintenance/internal/service/mocks"
)

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockTechnicianRepository
	}

	type testCase struct {
		name   string
		params model.CreateTechnicianParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.Technician, err error, d deps)
	}

	name := gofakeit.Name()

	tests := []testCase{
		{
			name:   "validation error: blank name",
			params: model.CreateTechnicianParams{Name: "  "},
			assert: func(t *testing.T, res *model.Technician, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "name is required")
				assert.Nil(t, res)
				d.repository.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "repository error",
			params: model.CreateTechnicianParams{Name: name},
			setup: func(d deps) {
				d.repository.
					On("Insert", mock.Anything, mock.AnythingOfType("*model.Technician")).
					Return(errors.New("store unavailable")).
					Once()
			},
			assert: func(t *testing.T, res *model.Technician, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "store unavailable")
				assert.Nil(t, res)
			},
		},
		{
			name:   "success: trims and deduplicates skills",
			params: model.CreateTechnicianParams{Name: " " + name + " ", Skills: []string{"engine", " engine ", "", "brakes"}},
			setup: func(d deps) {
				d.repository.
					On("Insert", mock.Anything, mock.MatchedBy(func(tc *model.Technician) bool {
						return tc.Name == name && tc.Active && tc.ID != ""
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Technician, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, name, res.Name)
				assert.Equal(t, []string{"engine", "brakes"}, res.Skills)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{repository: mocks.NewMockTechnicianRepository(t)}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := NewTechnicianService(d.repository, time.Second, time.Second)
			res, err := svc.Create(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceEnsureAssignable(t *testing.T) {
	t.Parallel()

	active := &model.Technician{ID: "t-1", Name: gofakeit.Name(), Active: true}
	retired := &model.Technician{ID: "t-2", Name: gofakeit.Name(), Active: false}

	tests := []struct {
		name    string
		ids     []string
		listErr error
		wantErr error
		noCall  bool
	}{
		{name: "nothing to check", ids: []string{"", ""}, noCall: true},
		{name: "active technician", ids: []string{"t-1"}},
		{name: "unknown technician", ids: []string{"t-1", "t-9"}, wantErr: model.ErrTechnicianNotFound},
		{name: "inactive technician", ids: []string{"t-2"}, wantErr: model.ErrValidation},
		{name: "list fails", ids: []string{"t-1"}, listErr: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockTechnicianRepository(t)
			if !tt.noCall {
				repo.On("List", mock.Anything).
					Return([]*model.Technician{active, retired}, tt.listErr).
					Once()
			}

			svc := NewTechnicianService(repo, time.Second, time.Second)
			err := svc.EnsureAssignable(context.Background(), tt.ids...)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.listErr != nil:
				assert.ErrorIs(t, err, tt.listErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceListActiveOnly(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockTechnicianRepository(t)
	repo.On("List", mock.Anything).
		Return([]*model.Technician{{ID: "a", Active: true}, {ID: "b"}}, nil).
		Twice()

	svc := NewTechnicianService(repo, time.Second, time.Second)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)
}
