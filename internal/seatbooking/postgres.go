package seatbooking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

var ErrReservationRejected = errors.New("seat reservation rejected")

type PostgresSeatReservationService struct {
	db *pgxpool.Pool
}

func NewPostgresSeatReservationService(db *pgxpool.Pool) *PostgresSeatReservationService {
	return &PostgresSeatReservationService{
		db: db,
	}
}

func (p *PostgresSeatReservationService) ReserveSeat(ctx context.Context, accountID domain.AccountID, totalSeats int) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO seat_reservations (id, account_id, seats)
			VALUES ($1, $2, $3)
		`

		_, err := tx.Exec(ctx, query, uuid.New(), int64(accountID), totalSeats)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO account_seat_totals (account_id, seats)
			VALUES ($1, $2)
			ON CONFLICT (account_id) DO UPDATE
			SET seats = account_seat_totals.seats + EXCLUDED.seats, updated_at = NOW()
		`

		_, err = tx.Exec(ctx, query, int64(accountID), totalSeats)
		return err
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return fmt.Errorf("%w: %s", ErrReservationRejected, pgErr.Message)
		}

		return fmt.Errorf("failed to reserve %d seats for account %d: %w", totalSeats, accountID, err)
	}

	return nil
}

// ReservedSeats returns the number of seats reserved for the account so far.
func (p *PostgresSeatReservationService) ReservedSeats(ctx context.Context, accountID domain.AccountID) (int, error) {
	query := `
		SELECT seats
		FROM account_seat_totals
		WHERE account_id = $1
	`

	var seats int

	err := p.db.QueryRow(ctx, query, int64(accountID)).Scan(&seats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, err
	}

	return seats, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
