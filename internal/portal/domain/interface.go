package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetActiveByCredentials(ctx context.Context, email, phone string) (*User, error)
	UpdateLastLogin(ctx context.Context, id string) error
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*UserStats, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Update(ctx context.Context, id string, update AdminUpdate) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	End(ctx context.Context, id string, update SessionEndUpdate) error
	FindOpenByEmail(ctx context.Context, email string) (*Session, error)
	List(ctx context.Context, limit, offset int) ([]SessionWithUser, error)
	ListActive(ctx context.Context) ([]SessionWithUser, error)
	ListByEmail(ctx context.Context, email string) ([]Session, error)
	ListByIP(ctx context.Context, ip string) ([]SessionWithUser, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]SessionWithUser, error)
	Stats(ctx context.Context) (*SessionStats, error)
	DailyStats(ctx context.Context, days int) ([]DailyStat, error)
}

type SettingsRepository interface {
	List(ctx context.Context) ([]Setting, error)
	Get(ctx context.Context, key string) (*Setting, error)
	Set(ctx context.Context, key, value string) error
}
