package memory

import (
	"context"
	"testing"
	"time"

	"insights-console-be/internal/entity"
	"insights-console-be/pkg/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardRepositoryStoresCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewWizardRepository(time.Hour)

	sel, err := wizard.NewSelection("Excel")
	require.NoError(t, err)
	w, err := wizard.NewConfiguring("w1", sel)
	require.NoError(t, err)
	require.NoError(t, w.SetValue("excel_file", "private/uploads/a.xlsx"))
	require.NoError(t, repo.Save(ctx, w))

	// Mutating the caller's wizard must not leak into the stored one.
	require.NoError(t, w.SetValue("excel_file", "changed"))

	got, err := repo.Find(ctx, "w1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "private/uploads/a.xlsx", got.Values()["excel_file"])

	missing, err := repo.Find(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, "w1"))
	got, _ = repo.Find(ctx, "w1")
	assert.Nil(t, got)
}

func TestSubmissionRepositoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository()

	older := &entity.Submission{WizardId: "w1", Status: entity.SubmissionFailed, CreatedAt: time.Now().Add(-time.Minute)}
	newer := &entity.Submission{WizardId: "w1", Status: entity.SubmissionPending}
	other := &entity.Submission{WizardId: "w2", Status: entity.SubmissionPending}
	for _, s := range []*entity.Submission{older, newer, other} {
		require.NoError(t, repo.Create(ctx, s))
	}

	newer.Status = entity.SubmissionSucceeded
	require.NoError(t, repo.Update(ctx, newer))

	list, err := repo.FindByWizard(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.Id, list[0].Id)
	assert.Equal(t, entity.SubmissionSucceeded, list[0].Status)
	assert.NotNil(t, list[0].UpdatedAt)

	recent, err := repo.FindRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestViewRepositoryReturnsSameView(t *testing.T) {
	repo := NewViewRepository(time.Hour)

	assert.Same(t, repo.Chat("s1"), repo.Chat("s1"))
	assert.NotSame(t, repo.Chat("s1"), repo.Chat("s2"))
	assert.Same(t, repo.Insights("s1"), repo.Insights("s1"))

	first := repo.Chat("s1")
	repo.Forget("s1")
	assert.NotSame(t, first, repo.Chat("s1"))
}
