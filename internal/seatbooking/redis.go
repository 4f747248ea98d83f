package seatbooking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/redis/go-redis/v9"
)

var reserveSeatsScript = redis.NewScript(`
    -- KEYS[1] = reservation key (e.g., seat_reservation:<uuid>)
    -- KEYS[2] = account seat counter (e.g., account_seats:123)
    -- ARGV = [accountID, seats, reservedAt, ttl]

    if redis.call("EXISTS", KEYS[1]) == 1 then
        return {err = "reservation already exists"}
    end

    redis.call("HSET", KEYS[1], "account_id", ARGV[1], "seats", ARGV[2], "reserved_at", ARGV[3])
    if tonumber(ARGV[4]) > 0 then
        redis.call("EXPIRE", KEYS[1], ARGV[4])
    end

    return redis.call("INCRBY", KEYS[2], ARGV[2])
`)

type RedisSeatReservationService struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisSeatReservationService(client redis.UniversalClient, ttl time.Duration) *RedisSeatReservationService {
	return &RedisSeatReservationService{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *RedisSeatReservationService) ReserveSeat(ctx context.Context, accountID domain.AccountID, totalSeats int) error {
	if totalSeats < 0 {
		return fmt.Errorf("cannot reserve %d seats", totalSeats)
	}

	keys := []string{
		reservationKey(uuid.New()),
		accountSeatsKey(accountID),
	}

	err := reserveSeatsScript.Run(
		ctx,
		s.client,
		keys,
		int64(accountID),
		totalSeats,
		s.now().UTC().Format(time.RFC3339),
		int(s.ttl.Seconds()),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to reserve %d seats for account %d: %w", totalSeats, accountID, err)
	}

	return nil
}

// ReservedSeats returns the number of seats reserved for the account so far.
func (s *RedisSeatReservationService) ReservedSeats(ctx context.Context, accountID domain.AccountID) (int, error) {
	val, err := s.client.Get(ctx, accountSeatsKey(accountID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}

		return 0, err
	}

	return strconv.Atoi(val)
}

func reservationKey(id uuid.UUID) string {
	return fmt.Sprintf("seat_reservation:%s", id)
}

func accountSeatsKey(accountID domain.AccountID) string {
	return fmt.Sprintf("account_seats:%d", accountID)
}
