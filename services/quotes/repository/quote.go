package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// QuoteRepo implements quote persistence on Postgres. The vehicle snapshot
// and manual details live as JSONB; make and model are extracted into plain
// columns so the admin listing filters stay indexable.
type QuoteRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewQuoteRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *QuoteRepo {
	return &QuoteRepo{
		cfg: cfg,
		db:  db,
	}
}

const quoteColumns = `
	id, user_id, reg_number, kind,
	vehicle_data, estimated_price, manual_details,
	admin_offer_price, admin_message, is_reviewed_by_admin, reviewed_at,
	final_price, client_decision, rejection_reason, rejected_at, accepted_at,
	collection_pickup_date, collection_contact_number, collection_address, collection_collected,
	created_at, updated_at`

// GetQuotesByUserAndReg returns every quote lineage for the pair, newest
// first. At most one auto and one manual row can exist.
func (r *QuoteRepo) GetQuotesByUserAndReg(ctx context.Context, userID uuid.UUID, regNumber string) ([]*models.Quote, error) {
	query := `SELECT` + quoteColumns + `
		FROM quotes
		WHERE user_id = $1 AND reg_number = $2
		ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID, regNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// GetQuoteByID retrieves a single quote
func (r *QuoteRepo) GetQuoteByID(ctx context.Context, quoteID uuid.UUID) (*models.Quote, error) {
	query := `SELECT` + quoteColumns + `
		FROM quotes
		WHERE id = $1`

	quote, err := scanQuote(r.db.QueryRowContext(ctx, query, quoteID))
	if err == sql.ErrNoRows {
		return nil, errs.New(errs.NotFound, "quote not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return quote, nil
}

// GetQuotesByUser returns a user's full quote history, newest first
func (r *QuoteRepo) GetQuotesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quote, error) {
	query := `SELECT` + quoteColumns + `
		FROM quotes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	return scanQuotes(rows)
}

// UpsertAutoQuote atomically creates or refreshes the auto quote for
// (user_id, reg_number). Two racing requests land on the same row; the loser
// of the insert race overwrites the snapshot and price instead of erroring,
// so the operation stays idempotent without application-level locking.
func (r *QuoteRepo) UpsertAutoQuote(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	vehicleJSON, err := marshalNullable(quote.VehicleData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode vehicle snapshot: %w", err)
	}

	query := `
		INSERT INTO quotes (
			id, user_id, reg_number, kind,
			vehicle_data, vehicle_make, vehicle_model, estimated_price,
			client_decision, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id, reg_number, kind) DO UPDATE SET
			vehicle_data = EXCLUDED.vehicle_data,
			vehicle_make = EXCLUDED.vehicle_make,
			vehicle_model = EXCLUDED.vehicle_model,
			estimated_price = EXCLUDED.estimated_price,
			updated_at = NOW()
		RETURNING` + quoteColumns

	var vehicleMake, vehicleModel string
	if quote.VehicleData != nil {
		vehicleMake = quote.VehicleData.Make
		vehicleModel = quote.VehicleData.Model
	}

	saved, err := scanQuote(r.db.QueryRowContext(
		ctx,
		query,
		quote.ID,
		quote.UserID,
		quote.RegNumber,
		quote.Kind,
		vehicleJSON,
		vehicleMake,
		vehicleModel,
		quote.EstimatedPrice,
		quote.ClientDecision,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert quote: %w", err)
	}
	return saved, nil
}

// SaveManualRequest persists the reset-and-reuse mutation of a manual review
// request. The predicate re-checks that the record has not been accepted in
// the meantime; a stale caller gets a conflict, not an overwrite.
func (r *QuoteRepo) SaveManualRequest(ctx context.Context, quote *models.Quote) error {
	vehicleJSON, err := marshalNullable(quote.VehicleData)
	if err != nil {
		return fmt.Errorf("failed to encode vehicle snapshot: %w", err)
	}
	manualJSON, err := marshalNullable(quote.ManualDetails)
	if err != nil {
		return fmt.Errorf("failed to encode manual details: %w", err)
	}

	var vehicleMake, vehicleModel string
	if quote.VehicleData != nil {
		vehicleMake = quote.VehicleData.Make
		vehicleModel = quote.VehicleData.Model
	}

	query := `
		UPDATE quotes SET
			kind = $2,
			vehicle_data = $3,
			vehicle_make = $4,
			vehicle_model = $5,
			manual_details = $6,
			admin_offer_price = NULL,
			admin_message = '',
			is_reviewed_by_admin = FALSE,
			reviewed_at = NULL,
			final_price = NULL,
			client_decision = $7,
			rejection_reason = '',
			rejected_at = NULL,
			updated_at = NOW()
		WHERE id = $1 AND client_decision <> 'accepted'`

	result, err := r.db.ExecContext(
		ctx,
		query,
		quote.ID,
		quote.Kind,
		vehicleJSON,
		vehicleMake,
		vehicleModel,
		manualJSON,
		quote.ClientDecision,
	)
	if err != nil {
		return fmt.Errorf("failed to save manual request: %w", err)
	}
	return requireRowUpdated(result, "quote no longer accepts a manual request")
}

// AcceptQuote commits the accept-with-details transition. The predicate
// requires a still-pending decision and no prior collection details.
func (r *QuoteRepo) AcceptQuote(ctx context.Context, quote *models.Quote) error {
	query := `
		UPDATE quotes SET
			client_decision = $2,
			accepted_at = $3,
			final_price = $4,
			collection_pickup_date = $5,
			collection_contact_number = $6,
			collection_address = $7,
			collection_collected = FALSE,
			updated_at = NOW()
		WHERE id = $1 AND client_decision = 'pending' AND collection_pickup_date IS NULL`

	result, err := r.db.ExecContext(
		ctx,
		query,
		quote.ID,
		quote.ClientDecision,
		quote.AcceptedAt,
		quote.FinalPrice,
		quote.CollectionDetails.PickupDate,
		quote.CollectionDetails.ContactNumber,
		quote.CollectionDetails.Address,
	)
	if err != nil {
		return fmt.Errorf("failed to accept quote: %w", err)
	}
	return requireRowUpdated(result, "quote was already decided")
}

// RejectQuote commits a client rejection of a reviewed manual offer
func (r *QuoteRepo) RejectQuote(ctx context.Context, quote *models.Quote) error {
	query := `
		UPDATE quotes SET
			client_decision = $2,
			rejection_reason = $3,
			rejected_at = $4,
			updated_at = NOW()
		WHERE id = $1 AND kind = 'manual' AND is_reviewed_by_admin AND client_decision = 'pending'`

	result, err := r.db.ExecContext(
		ctx,
		query,
		quote.ID,
		quote.ClientDecision,
		quote.RejectionReason,
		quote.RejectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to reject quote: %w", err)
	}
	return requireRowUpdated(result, "quote is not in a rejectable state")
}

// ReviewQuote commits the admin's pricing decision. The predicate enforces
// one review per cycle.
func (r *QuoteRepo) ReviewQuote(ctx context.Context, quote *models.Quote) error {
	query := `
		UPDATE quotes SET
			admin_offer_price = $2,
			admin_message = $3,
			is_reviewed_by_admin = TRUE,
			reviewed_at = $4,
			final_price = $5,
			updated_at = NOW()
		WHERE id = $1 AND kind = 'manual' AND NOT is_reviewed_by_admin AND client_decision = 'pending'`

	result, err := r.db.ExecContext(
		ctx,
		query,
		quote.ID,
		quote.AdminOfferPrice,
		quote.AdminMessage,
		quote.ReviewedAt,
		quote.FinalPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to review quote: %w", err)
	}
	return requireRowUpdated(result, "quote was already reviewed this cycle")
}

// MarkCollected flips the collected flag on an accepted quote
func (r *QuoteRepo) MarkCollected(ctx context.Context, quoteID uuid.UUID) error {
	query := `
		UPDATE quotes SET
			collection_collected = TRUE,
			updated_at = NOW()
		WHERE id = $1 AND client_decision = 'accepted' AND collection_pickup_date IS NOT NULL`

	result, err := r.db.ExecContext(ctx, query, quoteID)
	if err != nil {
		return fmt.Errorf("failed to mark quote collected: %w", err)
	}
	return requireRowUpdated(result, "quote is not awaiting collection")
}

// ListQuotes builds the admin read-side query: every provided filter must
// match, with case-insensitive substring matching inside each dimension
func (r *QuoteRepo) ListQuotes(ctx context.Context, filter models.QuoteListFilter) ([]*models.QuoteWithUser, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT
		q.id, q.user_id, q.reg_number, q.kind,
		q.vehicle_data, q.estimated_price, q.manual_details,
		q.admin_offer_price, q.admin_message, q.is_reviewed_by_admin, q.reviewed_at,
		q.final_price, q.client_decision, q.rejection_reason, q.rejected_at, q.accepted_at,
		q.collection_pickup_date, q.collection_contact_number, q.collection_address, q.collection_collected,
		q.created_at, q.updated_at,
		u.first_name, u.last_name, u.email, u.phone
	FROM quotes q
	JOIN users u ON u.id = q.user_id
	WHERE 1=1`)

	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Kind != "" {
		sb.WriteString(" AND q.kind = " + arg(filter.Kind))
	}
	if filter.Decision != "" {
		sb.WriteString(" AND q.client_decision = " + arg(filter.Decision))
	}
	if filter.Reviewed != nil {
		sb.WriteString(" AND q.is_reviewed_by_admin = " + arg(*filter.Reviewed))
	}
	if filter.Collected != nil {
		sb.WriteString(" AND q.collection_collected = " + arg(*filter.Collected))
	}
	if filter.RegNumber != "" {
		sb.WriteString(" AND q.reg_number ILIKE " + arg("%"+filter.RegNumber+"%"))
	}
	if filter.Make != "" {
		sb.WriteString(" AND q.vehicle_make ILIKE " + arg("%"+filter.Make+"%"))
	}
	if filter.Model != "" {
		sb.WriteString(" AND q.vehicle_model ILIKE " + arg("%"+filter.Model+"%"))
	}
	if filter.UserSearch != "" {
		p := arg("%" + filter.UserSearch + "%")
		sb.WriteString(" AND (u.first_name || ' ' || u.last_name ILIKE " + p +
			" OR u.email ILIKE " + p +
			" OR u.phone ILIKE " + p + ")")
	}

	sb.WriteString(" ORDER BY q.updated_at DESC")
	sb.WriteString(" LIMIT " + arg(filter.Limit))
	sb.WriteString(" OFFSET " + arg(filter.Offset))

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var list []*models.QuoteWithUser
	for rows.Next() {
		row := &models.QuoteWithUser{}
		if err := scanQuoteInto(rows, &row.Quote,
			&row.UserFirstName, &row.UserLastName, &row.UserEmail, &row.UserPhone); err != nil {
			return nil, fmt.Errorf("failed to scan quote row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// DeleteQuote permanently removes a quote record
func (r *QuoteRepo) DeleteQuote(ctx context.Context, quoteID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, quoteID)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return errs.New(errs.NotFound, "quote not found")
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan path
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanQuote(row scanner) (*models.Quote, error) {
	quote := &models.Quote{}
	if err := scanQuoteInto(row, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func scanQuotes(rows *sql.Rows) ([]*models.Quote, error) {
	var list []*models.Quote
	for rows.Next() {
		quote := &models.Quote{}
		if err := scanQuoteInto(rows, quote); err != nil {
			return nil, fmt.Errorf("failed to scan quote row: %w", err)
		}
		list = append(list, quote)
	}
	return list, rows.Err()
}

// scanQuoteInto scans the quoteColumns projection plus any trailing extra
// destinations into a Quote, rehydrating the JSONB documents and the nested
// collection details.
func scanQuoteInto(row scanner, quote *models.Quote, extra ...interface{}) error {
	var (
		vehicleJSON     []byte
		manualJSON      []byte
		estimatedPrice  sql.NullFloat64
		adminOfferPrice sql.NullFloat64
		adminMessage    sql.NullString
		reviewedAt      sql.NullTime
		finalPrice      sql.NullFloat64
		rejectionReason sql.NullString
		rejectedAt      sql.NullTime
		acceptedAt      sql.NullTime
		pickupDate      sql.NullTime
		contactNumber   sql.NullString
		address         sql.NullString
		collected       bool
	)

	dest := []interface{}{
		&quote.ID,
		&quote.UserID,
		&quote.RegNumber,
		&quote.Kind,
		&vehicleJSON,
		&estimatedPrice,
		&manualJSON,
		&adminOfferPrice,
		&adminMessage,
		&quote.IsReviewedByAdmin,
		&reviewedAt,
		&finalPrice,
		&quote.ClientDecision,
		&rejectionReason,
		&rejectedAt,
		&acceptedAt,
		&pickupDate,
		&contactNumber,
		&address,
		&collected,
		&quote.CreatedAt,
		&quote.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	if len(vehicleJSON) > 0 {
		quote.VehicleData = &models.VehicleSnapshot{}
		if err := json.Unmarshal(vehicleJSON, quote.VehicleData); err != nil {
			return fmt.Errorf("failed to decode vehicle snapshot: %w", err)
		}
	}
	if len(manualJSON) > 0 {
		quote.ManualDetails = &models.ManualDetails{}
		if err := json.Unmarshal(manualJSON, quote.ManualDetails); err != nil {
			return fmt.Errorf("failed to decode manual details: %w", err)
		}
	}

	quote.EstimatedPrice = nullFloat(estimatedPrice)
	quote.AdminOfferPrice = nullFloat(adminOfferPrice)
	quote.AdminMessage = adminMessage.String
	quote.ReviewedAt = nullTime(reviewedAt)
	quote.FinalPrice = nullFloat(finalPrice)
	quote.RejectionReason = rejectionReason.String
	quote.RejectedAt = nullTime(rejectedAt)
	quote.AcceptedAt = nullTime(acceptedAt)

	if pickupDate.Valid {
		quote.CollectionDetails = &models.CollectionDetails{
			PickupDate:    pickupDate.Time,
			ContactNumber: contactNumber.String,
			Address:       address.String,
			Collected:     collected,
		}
	}
	return nil
}

func marshalNullable(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case *models.VehicleSnapshot:
		if val == nil {
			return nil, nil
		}
	case *models.ManualDetails:
		if val == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

// requireRowUpdated converts a zero-row conditional update into a conflict
func requireRowUpdated(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return errs.New(errs.InvalidState, message)
	}
	return nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
