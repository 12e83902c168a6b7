package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dchas/praxis/models"
)

func TestCompleteOnboarding_ClassifiesAndStoresDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()
	require.True(t, e.NeedsOnboarding())

	m.classifier.EXPECT().
		Classify(ctx, "I want to get good at distributed systems").
		Return(models.Classification{Domain: "software engineering", Confidence: 0.93}, nil)
	m.accounts.EXPECT().
		UpdateProfile(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Profile) error {
			assert.Equal(t, "software engineering", p.Domain)
			return nil
		})

	require.True(t, e.CompleteOnboarding(ctx, "  I want to get good at distributed systems  "))
	assert.False(t, e.NeedsOnboarding())
	assert.Equal(t, "software engineering", e.Profile().Domain)
	assert.Equal(t, 0.93, e.Profile().DomainConfidence)
}

func TestCompleteOnboarding_ClassifierConsultedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	e.profile.Domain = "music"
	ctx := context.Background()

	// No classifier call expected: the domain is already assigned.
	assert.False(t, e.CompleteOnboarding(ctx, "now I want to learn painting"))
	assert.Equal(t, "music", e.Profile().Domain)
	_ = m
}

func TestCompleteOnboarding_ClassifierFailureIsRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.classifier.EXPECT().
		Classify(ctx, "learn jazz piano").
		Return(models.Classification{}, errors.New("service unavailable"))

	assert.False(t, e.CompleteOnboarding(ctx, "learn jazz piano"))
	assert.True(t, e.NeedsOnboarding(), "profile untouched, onboarding can be retried")

	m.classifier.EXPECT().
		Classify(ctx, "learn jazz piano").
		Return(models.Classification{Domain: "music", Confidence: 0.88}, nil)
	m.accounts.EXPECT().UpdateProfile(ctx, gomock.Any()).Return(nil)

	require.True(t, e.CompleteOnboarding(ctx, "learn jazz piano"))
	assert.False(t, e.NeedsOnboarding())
}

func TestCompleteOnboarding_EmptyGoalRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, _ := newTestEngine(t, ctrl)

	assert.False(t, e.CompleteOnboarding(context.Background(), "   "))
	assert.True(t, e.NeedsOnboarding())
}

func TestCompleteOnboarding_WriteThroughFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e, m := newTestEngine(t, ctrl)
	ctx := context.Background()

	m.classifier.EXPECT().
		Classify(ctx, "woodworking").
		Return(models.Classification{Domain: "crafts", Confidence: 0.7}, nil)
	m.accounts.EXPECT().
		UpdateProfile(ctx, gomock.Any()).
		Return(errors.New("account store down"))

	require.True(t, e.CompleteOnboarding(ctx, "woodworking"),
		"local domain assignment survives a failed write-through")
	assert.Equal(t, "crafts", e.Profile().Domain)
}
