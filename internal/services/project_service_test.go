package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"inovitaz_backend/internal/models"
)

func TestDetail_AnonymousNeverPurchased(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return structuredKit(), nil },
	}, &stubOrderRepo{})

	detail, err := svc.Detail(context.Background(), "p1", nil)
	assert.NoError(t, err)
	assert.False(t, detail.IsPurchased)
	assert.Equal(t, "structured", detail.Content.Format)
	assert.Equal(t, "kit", detail.Content.Overview)
}

func TestDetail_BuyerSeesPurchased(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return structuredKit(), nil },
	}, &stubOrderRepo{
		hasPaidOrder: func(userID, projectID string) (bool, error) {
			return userID == "u1" && projectID == "p1", nil
		},
	})

	detail, err := svc.Detail(context.Background(), "p1", testUser())
	assert.NoError(t, err)
	assert.True(t, detail.IsPurchased)
}

func TestDetail_AdminAlwaysPurchased(t *testing.T) {
	admin := testUser()
	admin.Role = models.UserRoleAdmin

	svc := NewProjectService(&stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return structuredKit(), nil },
	}, &stubOrderRepo{}) // no paid orders at all

	detail, err := svc.Detail(context.Background(), "p1", admin)
	assert.NoError(t, err)
	assert.True(t, detail.IsPurchased)
}

func TestDetail_NeverLeaksDownloadURL(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{
		findByID: func(string) (*models.Project, error) { return structuredKit(), nil },
	}, &stubOrderRepo{})

	detail, err := svc.Detail(context.Background(), "p1", testUser())
	assert.NoError(t, err)
	assert.NotContains(t, detail.Content.Overview, "cdn.example.com/kit.zip")
	// The response type has no download field; this guards the content
	// mapping against regressions.
	assert.NotEmpty(t, detail.Content.Format)
}
