package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// Ensure CartStore implements checkout.CartStore.
var _ checkout.CartStore = (*CartStore)(nil)

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// CartStore guarda el carrito de sesión de cada usuario como un documento JSON
// con TTL. El carrito solo vive aquí; nunca toca PostgreSQL.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore construye el almacén de carritos.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Get devuelve el carrito del usuario; un carrito vacío si no existe.
func (s *CartStore) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	raw, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &entity.Cart{}, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &cart, nil
}

// Save persiste el carrito completo y renueva el TTL.
func (s *CartStore) Save(ctx context.Context, userID string, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear elimina el carrito del usuario. Solo se llama tras un checkout confirmado
// o a petición explícita del usuario.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
