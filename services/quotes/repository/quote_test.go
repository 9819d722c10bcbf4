package repository_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/quotes/repository"
)

var quoteColumns = []string{
	"id", "user_id", "reg_number", "kind",
	"vehicle_data", "estimated_price", "manual_details",
	"admin_offer_price", "admin_message", "is_reviewed_by_admin", "reviewed_at",
	"final_price", "client_decision", "rejection_reason", "rejected_at", "accepted_at",
	"collection_pickup_date", "collection_contact_number", "collection_address", "collection_collected",
	"created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func quoteRow(t *testing.T, id, userID uuid.UUID, vehicle *models.VehicleSnapshot) *sqlmock.Rows {
	var vehicleJSON []byte
	if vehicle != nil {
		var err error
		vehicleJSON, err = json.Marshal(vehicle)
		require.NoError(t, err)
	}
	now := time.Now()
	return sqlmock.NewRows(quoteColumns).AddRow(
		id, userID, "AB12CDE", "auto",
		vehicleJSON, 250.0, nil,
		nil, "", false, nil,
		nil, "pending", "", nil, nil,
		nil, "", "", false,
		now, now,
	)
}

func TestUpsertAutoQuote_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	quoteID := uuid.New()
	userID := uuid.New()
	price := 250.0
	vehicle := &models.VehicleSnapshot{VRM: "AB12CDE", Make: "Ford", Model: "Focus"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotes")).
		WithArgs(quoteID, userID, "AB12CDE", models.QuoteKindAuto,
			sqlmock.AnyArg(), "Ford", "Focus", &price, models.DecisionPending).
		WillReturnRows(quoteRow(t, quoteID, userID, vehicle))

	saved, err := repo.UpsertAutoQuote(context.Background(), &models.Quote{
		ID:             quoteID,
		UserID:         userID,
		RegNumber:      "AB12CDE",
		Kind:           models.QuoteKindAuto,
		VehicleData:    vehicle,
		EstimatedPrice: &price,
		ClientDecision: models.DecisionPending,
	})
	require.NoError(t, err)
	assert.Equal(t, quoteID, saved.ID)
	require.NotNil(t, saved.VehicleData)
	assert.Equal(t, "Ford", saved.VehicleData.Make)
	require.NotNil(t, saved.EstimatedPrice)
	assert.Equal(t, 250.0, *saved.EstimatedPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuoteByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	quoteID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM quotes")).
		WithArgs(quoteID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetQuoteByID(context.Background(), quoteID)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestGetQuotesByUserAndReg_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	quoteID := uuid.New()
	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND reg_number = $2")).
		WithArgs(userID, "AB12CDE").
		WillReturnRows(quoteRow(t, quoteID, userID, nil))

	list, err := repo.GetQuotesByUserAndReg(context.Background(), userID, "AB12CDE")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, quoteID, list[0].ID)
	assert.Nil(t, list[0].VehicleData)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveManualRequest_ConflictOnAcceptedQuote(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	quote := &models.Quote{
		ID:             uuid.New(),
		Kind:           models.QuoteKindManual,
		ClientDecision: models.DecisionPending,
		ManualDetails:  &models.ManualDetails{Reason: models.ReasonUserRequestedReview},
	}

	mock.ExpectExec(regexp.QuoteMeta("client_decision <> 'accepted'")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveManualRequest(context.Background(), quote)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidState))
}

func TestAcceptQuote_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	now := time.Now()
	price := 290.0
	quote := &models.Quote{
		ID:             uuid.New(),
		ClientDecision: models.DecisionAccepted,
		AcceptedAt:     &now,
		FinalPrice:     &price,
		CollectionDetails: &models.CollectionDetails{
			PickupDate:    now.Add(48 * time.Hour),
			ContactNumber: "07700900123",
			Address:       "12 Scrapyard Lane",
		},
	}

	mock.ExpectExec(regexp.QuoteMeta("client_decision = 'pending' AND collection_pickup_date IS NULL")).
		WithArgs(quote.ID, quote.ClientDecision, quote.AcceptedAt, quote.FinalPrice,
			quote.CollectionDetails.PickupDate, "07700900123", "12 Scrapyard Lane").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AcceptQuote(context.Background(), quote)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptQuote_StaleRetryFails(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	quote := &models.Quote{
		ID:                uuid.New(),
		ClientDecision:    models.DecisionAccepted,
		CollectionDetails: &models.CollectionDetails{PickupDate: time.Now()},
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE quotes")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AcceptQuote(context.Background(), quote)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidState))
}

func TestReviewQuote_SingleReviewPerCycle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	price := 275.0
	quote := &models.Quote{
		ID:              uuid.New(),
		AdminOfferPrice: &price,
		AdminMessage:    "fair price",
		FinalPrice:      &price,
	}

	mock.ExpectExec(regexp.QuoteMeta("NOT is_reviewed_by_admin")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReviewQuote(context.Background(), quote)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.InvalidState))
}

func TestMarkCollected_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	quoteID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("collection_collected = TRUE")).
		WithArgs(quoteID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkCollected(context.Background(), quoteID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQuotes_BuildsFilterPredicates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	reviewed := true
	userID := uuid.New()
	quoteID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(append(append([]string{}, quoteColumns...),
		"first_name", "last_name", "email", "phone")).AddRow(
		quoteID, userID, "AB12CDE", "manual",
		nil, 250.0, nil,
		275.0, "fair price", true, now,
		nil, "pending", "", nil, nil,
		nil, "", "", false,
		now, now,
		"Ada", "Lovelace", "ada@example.com", "07700900123",
	)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = q.user_id")).
		WithArgs(models.QuoteKindManual, reviewed, "%AB12%", "%ada%", 20, 0).
		WillReturnRows(rows)

	list, err := repo.ListQuotes(context.Background(), models.QuoteListFilter{
		Kind:       models.QuoteKindManual,
		Reviewed:   &reviewed,
		RegNumber:  "AB12",
		UserSearch: "ada",
		Limit:      20,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].UserFirstName)
	assert.Equal(t, "ada@example.com", list[0].UserEmail)
	require.NotNil(t, list[0].AdminOfferPrice)
	assert.Equal(t, 275.0, *list[0].AdminOfferPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteQuote_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewQuoteRepository(&models.Config{}, db)

	quoteID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotes WHERE id = $1")).
		WithArgs(quoteID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteQuote(context.Background(), quoteID)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}
