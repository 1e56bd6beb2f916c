package holdstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// Hold временное удержание слота на время заполнения формы бронирования
type Hold struct {
	Token     string
	Slot      domain.Slot
	ExpiresAt time.Time
}

// Store хранилище холдов слотов в Redis
// Холд живет ttl и исчезает сам; сервер не хранит ничего кроме ключа
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient создает новый клиент Redis
func NewClient(addr, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

// NewStore создает хранилище холдов с заданным временем жизни
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Acquire пытается удержать слот
// SET NX гарантирует, что холд получает ровно один клиент; повторная
// попытка на удержанный слот возвращает ErrSlotHeld
func (s *Store) Acquire(ctx context.Context, slot domain.Slot) (*Hold, error) {
	token := uuid.NewString()

	ok, err := s.client.SetNX(ctx, slotKey(slot), token, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire: %v", ErrUnavailable, err)
	}
	if !ok {
		return nil, ErrSlotHeld
	}

	return &Hold{
		Token:     token,
		Slot:      slot,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

// Validate проверяет, что слот удерживается именно этим токеном
func (s *Store) Validate(ctx context.Context, slot domain.Slot, token string) error {
	val, err := s.client.Get(ctx, slotKey(slot)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrHoldNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: validate: %v", ErrUnavailable, err)
	}

	if val != token {
		return ErrHoldNotFound
	}

	return nil
}

// Release снимает холд, если он принадлежит токену
// Чужой или истекший холд не трогаем
func (s *Store) Release(ctx context.Context, slot domain.Slot, token string) error {
	key := slotKey(slot)

	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: release: %v", ErrUnavailable, err)
	}

	if val != token {
		return nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: release: %v", ErrUnavailable, err)
	}

	return nil
}

// slotKey собирает ключ холда из адреса слота
func slotKey(slot domain.Slot) string {
	return fmt.Sprintf("slot_hold:%d:%d:%s:%s",
		slot.HallID, slot.CourtNumber, slot.Date.Format(domain.DateFormat), slot.StartTime)
}
