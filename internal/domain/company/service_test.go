package company

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/core/apperror"
)

type mockRepo struct {
	companies map[string]*Company
	invoices  map[string][]int64

	created *Company
	updated *Company
	deleted string

	deleteErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		companies: map[string]*Company{},
		invoices:  map[string][]int64{},
	}
}

func (m *mockRepo) List(ctx context.Context) ([]Summary, error) {
	out := make([]Summary, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, Summary{Code: c.Code, Name: c.Name})
	}
	return out, nil
}

func (m *mockRepo) GetByCode(ctx context.Context, code string) (*Company, error) {
	c, ok := m.companies[code]
	if !ok {
		return nil, apperror.NewNotFound("company", code)
	}
	cp := *c
	return &cp, nil
}

func (m *mockRepo) InvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	return m.invoices[code], nil
}

func (m *mockRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := m.companies[code]
	return ok, nil
}

func (m *mockRepo) Create(ctx context.Context, c *Company) error {
	m.created = c
	m.companies[c.Code] = c
	return nil
}

func (m *mockRepo) Update(ctx context.Context, c *Company) error {
	m.updated = c
	m.companies[c.Code] = c
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, code string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = code
	delete(m.companies, code)
	return nil
}

// mockTxManager runs functions without real transactions, counting calls.
type mockTxManager struct {
	readOnlyCalls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnlyCalls++
	return fn(ctx)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives code from name", func(t *testing.T) {
		repo := newMockRepo()
		svc := NewService(repo, &mockTxManager{})

		desc := "Maker of OSX."
		c, err := svc.Create(ctx, "Apple Computer", &desc)

		require.NoError(t, err)
		assert.Equal(t, "apple-computer", c.Code)
		assert.Equal(t, "Apple Computer", c.Name)
		require.NotNil(t, c.Description)
		assert.Equal(t, desc, *c.Description)
		assert.Equal(t, c, repo.created)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		repo := newMockRepo()
		svc := NewService(repo, &mockTxManager{})

		_, err := svc.Create(ctx, "   ", nil)

		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
		assert.Nil(t, repo.created)
	})

	t.Run("rejects duplicate derived code", func(t *testing.T) {
		repo := newMockRepo()
		repo.companies["apple"] = &Company{Code: "apple", Name: "Apple"}
		svc := NewService(repo, &mockTxManager{})

		_, err := svc.Create(ctx, "Apple", nil)

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
	})
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.companies["ibm"] = &Company{Code: "ibm", Name: "IBM"}
	repo.invoices["ibm"] = []int64{4, 9}
	txm := &mockTxManager{}
	svc := NewService(repo, txm)

	t.Run("aggregates invoice ids in a read-only transaction", func(t *testing.T) {
		got, err := svc.Get(ctx, "ibm")

		require.NoError(t, err)
		assert.Equal(t, "ibm", got.Code)
		assert.Equal(t, []int64{4, 9}, got.InvoiceIDs)
		assert.Equal(t, 1, txm.readOnlyCalls)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "nope")

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces name and description, keeps code", func(t *testing.T) {
		repo := newMockRepo()
		old := "Big blue."
		repo.companies["ibm"] = &Company{Code: "ibm", Name: "IBM", Description: &old}
		svc := NewService(repo, &mockTxManager{})

		c, err := svc.Update(ctx, "ibm", "International Business Machines", nil)

		require.NoError(t, err)
		assert.Equal(t, "ibm", c.Code)
		assert.Equal(t, "International Business Machines", c.Name)
		assert.Nil(t, c.Description)
		assert.Equal(t, c, repo.updated)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		repo := newMockRepo()
		svc := NewService(repo, &mockTxManager{})

		_, err := svc.Update(ctx, "nope", "Name", nil)

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Nil(t, repo.updated)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		repo := newMockRepo()
		repo.companies["ibm"] = &Company{Code: "ibm", Name: "IBM"}
		svc := NewService(repo, &mockTxManager{})

		_, err := svc.Update(ctx, "ibm", "", nil)

		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidInput))
		assert.Nil(t, repo.updated)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to the repository", func(t *testing.T) {
		repo := newMockRepo()
		repo.companies["ibm"] = &Company{Code: "ibm", Name: "IBM"}
		svc := NewService(repo, &mockTxManager{})

		require.NoError(t, svc.Delete(ctx, "ibm"))
		assert.Equal(t, "ibm", repo.deleted)
	})

	t.Run("surfaces dependency conflict", func(t *testing.T) {
		repo := newMockRepo()
		repo.deleteErr = apperror.NewConflict("company has dependent invoices or industry associations")
		svc := NewService(repo, &mockTxManager{})

		err := svc.Delete(ctx, "ibm")

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
	})
}
