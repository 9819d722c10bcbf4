package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/quotes"
	"github.com/scrapline/scrapline/services/quotes/mocks"
)

type testDeps struct {
	repo    *mocks.MockQuoteRepo
	gw      *mocks.MockQuoteGW
	ledger  *mocks.MockQuotaLedger
	pricing *mocks.MockPricingPolicy
}

func newTestUC(t *testing.T) (quotes.QuoteUC, *testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &testDeps{
		repo:    mocks.NewMockQuoteRepo(ctrl),
		gw:      mocks.NewMockQuoteGW(ctrl),
		ledger:  mocks.NewMockQuotaLedger(ctrl),
		pricing: mocks.NewMockPricingPolicy(ctrl),
	}
	cfg := &models.Config{
		Quotes: models.QuotesConfig{ManualImageCap: 6},
	}
	uc, err := NewQuoteUC(cfg, deps.repo, deps.gw, deps.ledger, deps.pricing)
	require.NoError(t, err)
	return uc, deps
}

func float64Ptr(v float64) *float64 { return &v }

func autoQuote(userID uuid.UUID, price *float64) *models.Quote {
	return &models.Quote{
		ID:             uuid.New(),
		UserID:         userID,
		RegNumber:      "AB12CDE",
		Kind:           models.QuoteKindAuto,
		EstimatedPrice: price,
		VehicleData: &models.VehicleSnapshot{
			VRM:          "AB12CDE",
			Make:         "Ford",
			Model:        "Focus",
			KerbWeightKg: float64Ptr(1000),
		},
		ClientDecision: models.DecisionPending,
	}
}

func TestRequestAutoQuote_NewGenerated(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").Return(nil, nil)
	deps.ledger.EXPECT().Remaining(gomock.Any(), userID).Return(5, nil)
	deps.gw.EXPECT().FetchVehicleData(gomock.Any(), "AB12CDE").Return(&models.VehicleSnapshot{
		VRM:          "AB12CDE",
		Make:         "Ford",
		Model:        "Focus",
		KerbWeightKg: float64Ptr(1000),
	}, nil)
	deps.ledger.EXPECT().Decrement(gomock.Any(), userID).Return(nil)
	deps.pricing.EXPECT().CurrentRate(gomock.Any()).Return(0.25, nil)
	deps.repo.EXPECT().UpsertAutoQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.Quote) (*models.Quote, error) {
			assert.Equal(t, userID, q.UserID)
			assert.Equal(t, "AB12CDE", q.RegNumber)
			assert.Equal(t, models.QuoteKindAuto, q.Kind)
			require.NotNil(t, q.EstimatedPrice)
			assert.Equal(t, 250.0, *q.EstimatedPrice)
			return q, nil
		})

	result, err := uc.RequestAutoQuote(context.Background(), userID, "ab12 cde")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNewGenerated, result.Status)
	assert.Equal(t, 250.0, *result.Quote.EstimatedPrice)
}

func TestRequestAutoQuote_NoWeightLeavesPriceUnset(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").Return(nil, nil)
	deps.ledger.EXPECT().Remaining(gomock.Any(), userID).Return(3, nil)
	deps.gw.EXPECT().FetchVehicleData(gomock.Any(), "AB12CDE").Return(&models.VehicleSnapshot{
		VRM:  "AB12CDE",
		Make: "Reliant",
	}, nil)
	deps.ledger.EXPECT().Decrement(gomock.Any(), userID).Return(nil)
	deps.repo.EXPECT().UpsertAutoQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.Quote) (*models.Quote, error) {
			assert.Nil(t, q.EstimatedPrice)
			return q, nil
		})

	result, err := uc.RequestAutoQuote(context.Background(), userID, "AB12CDE")
	require.NoError(t, err)
	assert.Equal(t, models.StatusNewGenerated, result.Status)
	assert.Nil(t, result.Quote.EstimatedPrice)
}

func TestRequestAutoQuote_CachedQuote(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()
	existing := autoQuote(userID, float64Ptr(250))

	// No quota read, no fetch, no decrement for a cache hit
	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
		Return([]*models.Quote{existing}, nil)

	result, err := uc.RequestAutoQuote(context.Background(), userID, "AB12CDE")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCachedQuote, result.Status)
	assert.Equal(t, existing.ID, result.Quote.ID)
}

func TestRequestAutoQuote_AcceptedIsTerminal(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	tests := []struct {
		name      string
		collected bool
		expected  models.QuoteStatus
	}{
		{name: "pending collection", collected: false, expected: models.StatusAcceptedPendingCollection},
		{name: "already collected", collected: true, expected: models.StatusAcceptedCollected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := autoQuote(userID, float64Ptr(250))
			q.ClientDecision = models.DecisionAccepted
			q.CollectionDetails = &models.CollectionDetails{
				PickupDate: time.Now().Add(24 * time.Hour),
				Collected:  tt.collected,
			}
			deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
				Return([]*models.Quote{q}, nil)

			result, err := uc.RequestAutoQuote(context.Background(), userID, "AB12CDE")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Status)
		})
	}
}

func TestRequestAutoQuote_ManualInFlight(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	tests := []struct {
		name     string
		mutate   func(q *models.Quote)
		expected models.QuoteStatus
	}{
		{
			name:     "awaiting review",
			mutate:   func(q *models.Quote) {},
			expected: models.StatusManualPendingReview,
		},
		{
			name: "reviewed awaiting decision",
			mutate: func(q *models.Quote) {
				q.IsReviewedByAdmin = true
				q.AdminOfferPrice = float64Ptr(275)
			},
			expected: models.StatusManualReviewed,
		},
		{
			name: "previously rejected",
			mutate: func(q *models.Quote) {
				q.IsReviewedByAdmin = true
				q.ClientDecision = models.DecisionRejected
			},
			expected: models.StatusManualPreviouslyRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := autoQuote(userID, float64Ptr(250))
			q.Kind = models.QuoteKindManual
			tt.mutate(q)
			deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
				Return([]*models.Quote{q}, nil)

			result, err := uc.RequestAutoQuote(context.Background(), userID, "AB12CDE")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Status)
		})
	}
}

func TestRequestAutoQuote_QuotaExhausted(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").Return(nil, nil)
	deps.ledger.EXPECT().Remaining(gomock.Any(), userID).Return(0, nil)
	// VehicleDataProvider must not be called when the allowance is spent

	result, err := uc.RequestAutoQuote(context.Background(), userID, "AB12CDE")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.QuotaExhausted))
	assert.Equal(t, string(models.StatusChecksExhausted), errs.StateCodeOf(err))
}

func TestRequestAutoQuote_VehicleLookupFailures(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	tests := []struct {
		name     string
		fetchErr error
		kind     errs.Kind
	}{
		{
			name:     "unknown registration",
			fetchErr: errs.New(errs.NotFound, "vehicle not found"),
			kind:     errs.NotFound,
		},
		{
			name:     "upstream outage",
			fetchErr: errs.Wrap(errs.UpstreamUnavailable, "vehicle api unavailable", errors.New("status 503")),
			kind:     errs.UpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").Return(nil, nil)
			deps.ledger.EXPECT().Remaining(gomock.Any(), userID).Return(2, nil)
			deps.gw.EXPECT().FetchVehicleData(gomock.Any(), "AB12CDE").Return(nil, tt.fetchErr)
			// Decrement must not fire on a failed fetch

			_, err := uc.RequestAutoQuote(context.Background(), userID, "AB12CDE")
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, tt.kind))
		})
	}
}

func TestRequestAutoQuote_InvalidRegistration(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.RequestAutoQuote(context.Background(), uuid.New(), "   ")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidInput))
}

func TestSubmitManualQuote_ConvertsAutoQuote(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()
	existing := autoQuote(userID, float64Ptr(250))

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
		Return([]*models.Quote{existing}, nil)
	deps.repo.EXPECT().SaveManualRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *models.Quote) error {
			assert.Equal(t, models.QuoteKindManual, q.Kind)
			assert.False(t, q.IsReviewedByAdmin)
			assert.Equal(t, models.DecisionPending, q.ClientDecision)
			require.NotNil(t, q.ManualDetails)
			assert.Equal(t, models.ReasonUserThinksValueHigher, q.ManualDetails.Reason)
			assert.NotNil(t, q.ManualDetails.LastManualRequestAt)
			return nil
		})
	deps.gw.EXPECT().PublishManualRequested(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{
		UserEstimatedPrice: float64Ptr(300),
		Message:            "it has brand new tyres",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusManualSubmitted, result.Status)
}

func TestSubmitManualQuote_ReasonDerivation(t *testing.T) {
	tests := []struct {
		name         string
		estimated    *float64
		userEstimate *float64
		expected     models.ManualQuoteReason
	}{
		{
			name:     "no system price",
			expected: models.ReasonAutoPriceMissing,
		},
		{
			name:         "user estimate above system price",
			estimated:    float64Ptr(250),
			userEstimate: float64Ptr(300),
			expected:     models.ReasonUserThinksValueHigher,
		},
		{
			name:         "user estimate below system price",
			estimated:    float64Ptr(250),
			userEstimate: float64Ptr(200),
			expected:     models.ReasonUserRequestedReview,
		},
		{
			name:      "no user estimate",
			estimated: float64Ptr(250),
			expected:  models.ReasonUserRequestedReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUC(t)
			userID := uuid.New()
			existing := autoQuote(userID, tt.estimated)

			deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
				Return([]*models.Quote{existing}, nil)
			deps.repo.EXPECT().SaveManualRequest(gomock.Any(), gomock.Any()).Return(nil)
			deps.gw.EXPECT().PublishManualRequested(gomock.Any(), gomock.Any()).Return(nil)

			result, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{
				UserEstimatedPrice: tt.userEstimate,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Quote.ManualDetails.Reason)
		})
	}
}

func TestSubmitManualQuote_NoExistingQuote(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").Return(nil, nil)

	_, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestSubmitManualQuote_BlockingStates(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		mutate   func(q *models.Quote)
		expected models.QuoteStatus
	}{
		{
			name: "accepted pending collection",
			mutate: func(q *models.Quote) {
				q.ClientDecision = models.DecisionAccepted
				q.CollectionDetails = &models.CollectionDetails{PickupDate: time.Now()}
			},
			expected: models.StatusAcceptedPendingCollection,
		},
		{
			name: "accepted and collected",
			mutate: func(q *models.Quote) {
				q.ClientDecision = models.DecisionAccepted
				q.CollectionDetails = &models.CollectionDetails{PickupDate: time.Now(), Collected: true}
			},
			expected: models.StatusAcceptedCollected,
		},
		{
			name: "manual review outstanding",
			mutate: func(q *models.Quote) {
				q.Kind = models.QuoteKindManual
			},
			expected: models.StatusManualPendingReview,
		},
		{
			name: "reviewed offer awaiting decision",
			mutate: func(q *models.Quote) {
				q.Kind = models.QuoteKindManual
				q.IsReviewedByAdmin = true
				q.AdminOfferPrice = float64Ptr(275)
			},
			expected: models.StatusManualReviewed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUC(t)
			q := autoQuote(userID, float64Ptr(250))
			tt.mutate(q)
			deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
				Return([]*models.Quote{q}, nil)

			_, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{})
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.InvalidState))
			assert.Equal(t, string(tt.expected), errs.StateCodeOf(err))
		})
	}
}

func TestSubmitManualQuote_ResurrectsRejectedQuote(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()
	rejectedAt := time.Now().Add(-time.Hour)

	q := autoQuote(userID, float64Ptr(250))
	q.Kind = models.QuoteKindManual
	q.IsReviewedByAdmin = true
	q.AdminOfferPrice = float64Ptr(200)
	q.AdminMessage = "low demand for this model"
	q.FinalPrice = float64Ptr(200)
	q.ClientDecision = models.DecisionRejected
	q.RejectionReason = "too low"
	q.RejectedAt = &rejectedAt
	q.ManualDetails = &models.ManualDetails{
		Images: []string{"one.jpg", "two.jpg"},
		Reason: models.ReasonUserRequestedReview,
	}

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
		Return([]*models.Quote{q}, nil)
	deps.repo.EXPECT().SaveManualRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *models.Quote) error {
			assert.Equal(t, models.DecisionPending, saved.ClientDecision)
			assert.False(t, saved.IsReviewedByAdmin)
			assert.Nil(t, saved.AdminOfferPrice)
			assert.Empty(t, saved.AdminMessage)
			assert.Nil(t, saved.FinalPrice)
			assert.Empty(t, saved.RejectionReason)
			assert.Nil(t, saved.RejectedAt)
			assert.Equal(t, []string{"one.jpg", "two.jpg", "three.jpg"}, saved.ManualDetails.Images)
			return nil
		})
	deps.gw.EXPECT().PublishManualRequested(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{
		Images: []string{"three.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusManualInfoAppended, result.Status)
}

func TestSubmitManualQuote_ImageCapSlidingWindow(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	q := autoQuote(userID, nil)
	q.ManualDetails = &models.ManualDetails{
		Images: []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"},
	}

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
		Return([]*models.Quote{q}, nil)
	deps.repo.EXPECT().SaveManualRequest(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishManualRequested(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{
		Images: []string{"f.jpg", "g.jpg", "h.jpg"},
	})
	require.NoError(t, err)
	// Oldest entries drop; the newest six remain
	assert.Equal(t, []string{"c.jpg", "d.jpg", "e.jpg", "f.jpg", "g.jpg", "h.jpg"},
		result.Quote.ManualDetails.Images)
}

func TestSubmitManualQuote_MergesOnlyMissingVehicleFields(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	q := autoQuote(userID, nil)
	q.VehicleData = &models.VehicleSnapshot{VRM: "AB12CDE", Make: "Ford"}

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
		Return([]*models.Quote{q}, nil)
	deps.repo.EXPECT().SaveManualRequest(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishManualRequested(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{
		Make:               "Vauxhall",
		Model:              "Corsa",
		UserProvidedWeight: float64Ptr(950),
	})
	require.NoError(t, err)
	// Fetched make survives, missing fields are filled
	assert.Equal(t, "Ford", result.Quote.VehicleData.Make)
	assert.Equal(t, "Corsa", result.Quote.VehicleData.Model)
	require.NotNil(t, result.Quote.VehicleData.PricingWeight())
	assert.Equal(t, 950.0, *result.Quote.VehicleData.PricingWeight())
}

func TestSubmitManualQuote_NotificationFailureDoesNotBlock(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()
	existing := autoQuote(userID, float64Ptr(250))

	deps.repo.EXPECT().GetQuotesByUserAndReg(gomock.Any(), userID, "AB12CDE").
		Return([]*models.Quote{existing}, nil)
	deps.repo.EXPECT().SaveManualRequest(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishManualRequested(gomock.Any(), gomock.Any()).
		Return(errors.New("nats connection closed"))

	result, err := uc.SubmitManualQuote(context.Background(), userID, "AB12CDE", &models.ManualQuoteRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusManualSubmitted, result.Status)
}

func TestReviewManualQuote_Success(t *testing.T) {
	uc, deps := newTestUC(t)
	quoteID := uuid.New()

	q := autoQuote(uuid.New(), float64Ptr(250))
	q.ID = quoteID
	q.Kind = models.QuoteKindManual

	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), quoteID).Return(q, nil)
	deps.repo.EXPECT().ReviewQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *models.Quote) error {
			assert.True(t, saved.IsReviewedByAdmin)
			require.NotNil(t, saved.AdminOfferPrice)
			assert.Equal(t, 275.0, *saved.AdminOfferPrice)
			assert.Equal(t, 275.0, *saved.FinalPrice)
			assert.NotNil(t, saved.ReviewedAt)
			return nil
		})
	deps.gw.EXPECT().PublishQuoteReviewed(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.ReviewManualQuote(context.Background(), quoteID, 275, "fair price")
	require.NoError(t, err)
	assert.Equal(t, models.StatusManualReviewed, result.Status)
}

func TestReviewManualQuote_InvalidStates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *models.Quote)
	}{
		{
			name:   "auto quote cannot be reviewed",
			mutate: func(q *models.Quote) {},
		},
		{
			name: "already reviewed this cycle",
			mutate: func(q *models.Quote) {
				q.Kind = models.QuoteKindManual
				q.IsReviewedByAdmin = true
			},
		},
		{
			name: "rejected quote needs resubmission first",
			mutate: func(q *models.Quote) {
				q.Kind = models.QuoteKindManual
				q.IsReviewedByAdmin = true
				q.ClientDecision = models.DecisionRejected
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUC(t)
			q := autoQuote(uuid.New(), float64Ptr(250))
			tt.mutate(q)
			deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)

			_, err := uc.ReviewManualQuote(context.Background(), q.ID, 275, "")
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.InvalidState))
		})
	}
}

func TestReviewManualQuote_NegativePrice(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.ReviewManualQuote(context.Background(), uuid.New(), -1, "")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidInput))
}

func TestConfirmCollection_Success(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	q := autoQuote(userID, float64Ptr(250))
	q.Kind = models.QuoteKindManual
	q.IsReviewedByAdmin = true
	q.AdminOfferPrice = float64Ptr(290)

	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)
	deps.repo.EXPECT().AcceptQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *models.Quote) error {
			assert.Equal(t, models.DecisionAccepted, saved.ClientDecision)
			require.NotNil(t, saved.FinalPrice)
			assert.Equal(t, 290.0, *saved.FinalPrice)
			require.NotNil(t, saved.CollectionDetails)
			assert.False(t, saved.CollectionDetails.Collected)
			assert.Equal(t, "12 Scrapyard Lane", saved.CollectionDetails.Address)
			return nil
		})
	deps.gw.EXPECT().PublishQuoteAccepted(gomock.Any(), gomock.Any()).Return(nil)

	pickup := time.Now().Add(72 * time.Hour).Format(time.RFC3339)
	result, err := uc.ConfirmCollection(context.Background(), userID, q.ID, &models.CollectionRequest{
		PickupDate:    pickup,
		ContactNumber: "07700900123",
		Address:       "12 Scrapyard Lane",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusAcceptedPendingCollection, result.Status)
}

func TestConfirmCollection_AutoQuoteLocksEstimate(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()
	q := autoQuote(userID, float64Ptr(250))

	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)
	deps.repo.EXPECT().AcceptQuote(gomock.Any(), gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishQuoteAccepted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.ConfirmCollection(context.Background(), userID, q.ID, &models.CollectionRequest{
		PickupDate:    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		ContactNumber: "07700900123",
		Address:       "12 Scrapyard Lane",
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, *result.Quote.FinalPrice)
}

func TestConfirmCollection_ValidationFailures(t *testing.T) {
	uc, _ := newTestUC(t)
	userID := uuid.New()
	future := time.Now().Add(48 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name string
		req  *models.CollectionRequest
	}{
		{
			name: "missing body",
			req:  nil,
		},
		{
			name: "past pickup date",
			req: &models.CollectionRequest{
				PickupDate:    time.Now().Add(-time.Hour).Format(time.RFC3339),
				ContactNumber: "07700900123",
				Address:       "12 Scrapyard Lane",
			},
		},
		{
			name: "unparseable pickup date",
			req: &models.CollectionRequest{
				PickupDate:    "next tuesday",
				ContactNumber: "07700900123",
				Address:       "12 Scrapyard Lane",
			},
		},
		{
			name: "bad phone shape",
			req: &models.CollectionRequest{
				PickupDate:    future,
				ContactNumber: "call me",
				Address:       "12 Scrapyard Lane",
			},
		},
		{
			name: "missing address",
			req: &models.CollectionRequest{
				PickupDate:    future,
				ContactNumber: "07700900123",
				Address:       "   ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ConfirmCollection(context.Background(), userID, uuid.New(), tt.req)
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.InvalidInput))
		})
	}
}

func TestConfirmCollection_DoubleAcceptFails(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	q := autoQuote(userID, float64Ptr(250))
	q.ClientDecision = models.DecisionAccepted
	q.FinalPrice = float64Ptr(250)
	q.CollectionDetails = &models.CollectionDetails{PickupDate: time.Now().Add(24 * time.Hour)}

	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)

	_, err := uc.ConfirmCollection(context.Background(), userID, q.ID, &models.CollectionRequest{
		PickupDate:    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		ContactNumber: "07700900123",
		Address:       "12 Scrapyard Lane",
	})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidState))
	assert.Equal(t, string(models.StatusAcceptedPendingCollection), errs.StateCodeOf(err))
}

func TestConfirmCollection_ForeignQuoteReadsAsNotFound(t *testing.T) {
	uc, deps := newTestUC(t)

	q := autoQuote(uuid.New(), float64Ptr(250))
	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)

	_, err := uc.ConfirmCollection(context.Background(), uuid.New(), q.ID, &models.CollectionRequest{
		PickupDate:    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		ContactNumber: "07700900123",
		Address:       "12 Scrapyard Lane",
	})
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestRejectQuote_Success(t *testing.T) {
	uc, deps := newTestUC(t)
	userID := uuid.New()

	q := autoQuote(userID, float64Ptr(250))
	q.Kind = models.QuoteKindManual
	q.IsReviewedByAdmin = true
	q.AdminOfferPrice = float64Ptr(200)

	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)
	deps.repo.EXPECT().RejectQuote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *models.Quote) error {
			assert.Equal(t, models.DecisionRejected, saved.ClientDecision)
			assert.Equal(t, "too low", saved.RejectionReason)
			assert.NotNil(t, saved.RejectedAt)
			return nil
		})
	deps.gw.EXPECT().PublishQuoteRejected(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.RejectQuote(context.Background(), userID, q.ID, "too low")
	require.NoError(t, err)
	assert.Equal(t, models.StatusManualPreviouslyRejected, result.Status)
}

func TestRejectQuote_RequiresPriorReview(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name   string
		mutate func(q *models.Quote)
	}{
		{
			name:   "auto quotes cannot be rejected",
			mutate: func(q *models.Quote) {},
		},
		{
			name: "manual quote not yet reviewed",
			mutate: func(q *models.Quote) {
				q.Kind = models.QuoteKindManual
			},
		},
		{
			name: "already accepted",
			mutate: func(q *models.Quote) {
				q.Kind = models.QuoteKindManual
				q.IsReviewedByAdmin = true
				q.ClientDecision = models.DecisionAccepted
				q.CollectionDetails = &models.CollectionDetails{PickupDate: time.Now()}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, deps := newTestUC(t)
			q := autoQuote(userID, float64Ptr(250))
			tt.mutate(q)
			deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)

			_, err := uc.RejectQuote(context.Background(), userID, q.ID, "too low")
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.InvalidState))
		})
	}
}

func TestRejectQuote_EmptyReason(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.RejectQuote(context.Background(), uuid.New(), uuid.New(), "  ")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidInput))
}

func TestMarkCollected_Success(t *testing.T) {
	uc, deps := newTestUC(t)

	q := autoQuote(uuid.New(), float64Ptr(250))
	q.ClientDecision = models.DecisionAccepted
	q.FinalPrice = float64Ptr(250)
	q.CollectionDetails = &models.CollectionDetails{PickupDate: time.Now().Add(24 * time.Hour)}

	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)
	deps.repo.EXPECT().MarkCollected(gomock.Any(), q.ID).Return(nil)
	deps.gw.EXPECT().PublishQuoteCollected(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.MarkCollected(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAcceptedCollected, result.Status)
	assert.True(t, result.Quote.CollectionDetails.Collected)
}

func TestMarkCollected_RepeatedCallIsNoOp(t *testing.T) {
	uc, deps := newTestUC(t)

	q := autoQuote(uuid.New(), float64Ptr(250))
	q.ClientDecision = models.DecisionAccepted
	q.FinalPrice = float64Ptr(250)
	q.CollectionDetails = &models.CollectionDetails{
		PickupDate: time.Now().Add(-24 * time.Hour),
		Collected:  true,
	}

	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)
	deps.repo.EXPECT().MarkCollected(gomock.Any(), q.ID).Return(nil)
	// Collection already notified; the repeat stays silent

	result, err := uc.MarkCollected(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAcceptedCollected, result.Status)
}

func TestMarkCollected_RequiresAcceptedState(t *testing.T) {
	uc, deps := newTestUC(t)

	q := autoQuote(uuid.New(), float64Ptr(250))
	deps.repo.EXPECT().GetQuoteByID(gomock.Any(), q.ID).Return(q, nil)

	_, err := uc.MarkCollected(context.Background(), q.ID)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidState))
}

func TestListQuotes_AppliesDefaultLimit(t *testing.T) {
	uc, deps := newTestUC(t)

	deps.repo.EXPECT().ListQuotes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.QuoteListFilter) ([]*models.QuoteWithUser, error) {
			assert.Equal(t, defaultListLimit, filter.Limit)
			assert.Equal(t, 0, filter.Offset)
			return []*models.QuoteWithUser{}, nil
		})

	_, err := uc.ListQuotes(context.Background(), models.QuoteListFilter{Offset: -5})
	require.NoError(t, err)
}
