package industry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/core/apperror"
)

type mockRepo struct {
	industries map[string]*Industry

	created    *Industry
	associated *Association

	associateErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{industries: map[string]*Industry{}}
}

func (m *mockRepo) List(ctx context.Context) ([]Industry, error) {
	out := make([]Industry, 0, len(m.industries))
	for _, i := range m.industries {
		out = append(out, *i)
	}
	return out, nil
}

func (m *mockRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := m.industries[code]
	return ok, nil
}

func (m *mockRepo) Create(ctx context.Context, i *Industry) error {
	m.created = i
	m.industries[i.Code] = i
	return nil
}

func (m *mockRepo) Associate(ctx context.Context, a *Association) error {
	if m.associateErr != nil {
		return m.associateErr
	}
	m.associated = a
	return nil
}

type mockDirectory struct {
	codes map[string]bool
}

func (m *mockDirectory) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return m.codes[code], nil
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives code from label", func(t *testing.T) {
		repo := newMockRepo()
		svc := NewService(repo, &mockDirectory{})

		i, err := svc.Create(ctx, "Accounting")

		require.NoError(t, err)
		assert.Equal(t, "accounting", i.Code)
		assert.Equal(t, "Accounting", i.Industry)
		assert.Equal(t, i, repo.created)
	})

	t.Run("rejects empty label", func(t *testing.T) {
		repo := newMockRepo()
		svc := NewService(repo, &mockDirectory{})

		_, err := svc.Create(ctx, "  ")

		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
		assert.Nil(t, repo.created)
	})

	t.Run("rejects duplicate derived code", func(t *testing.T) {
		repo := newMockRepo()
		repo.industries["tech"] = &Industry{Code: "tech", Industry: "Tech"}
		svc := NewService(repo, &mockDirectory{})

		_, err := svc.Create(ctx, "Tech")

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
	})
}

func TestServiceAssociate(t *testing.T) {
	ctx := context.Background()

	setup := func() (*mockRepo, *Service) {
		repo := newMockRepo()
		repo.industries["tech"] = &Industry{Code: "tech", Industry: "Technology"}
		dir := &mockDirectory{codes: map[string]bool{"apple": true}}
		return repo, NewService(repo, dir)
	}

	t.Run("links existing company and industry", func(t *testing.T) {
		repo, svc := setup()

		a, err := svc.Associate(ctx, "apple", "tech")

		require.NoError(t, err)
		assert.Equal(t, "apple", a.CompCode)
		assert.Equal(t, "tech", a.IndCode)
		assert.Equal(t, a, repo.associated)
	})

	t.Run("unknown company is not found", func(t *testing.T) {
		repo, svc := setup()

		_, err := svc.Associate(ctx, "nope", "tech")

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Nil(t, repo.associated)
	})

	t.Run("unknown industry is not found", func(t *testing.T) {
		repo, svc := setup()

		_, err := svc.Associate(ctx, "apple", "nope")

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Nil(t, repo.associated)
	})

	t.Run("duplicate pair surfaces the conflict", func(t *testing.T) {
		repo, svc := setup()
		repo.associateErr = apperror.NewConflict("association already exists")

		_, err := svc.Associate(ctx, "apple", "tech")

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
	})
}
