package migrations

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

type User struct {
	ID           int64     `gorm:"type:bigserial;primaryKey"`
	ExternalID   uuid.UUID `gorm:"type:uuid;not null;default:gen_random_uuid();uniqueIndex"`
	Email        string    `gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
}

type Session struct {
	SessionID string `gorm:"type:text;primaryKey"`
	UserID    int64  `gorm:"type:bigint;uniqueIndex;not null"`
	User      User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

type Task struct {
	ID          int64     `gorm:"type:bigserial;primaryKey"`
	ExternalID  uuid.UUID `gorm:"type:uuid;not null;default:gen_random_uuid();uniqueIndex"`
	UserID      int64     `gorm:"type:bigint;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	CreatedOn   time.Time `gorm:"type:timestamptz;not null;default:now()"`
	User        User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

type Event struct {
	ID         int64     `gorm:"type:bigserial;primaryKey"`
	ExternalID uuid.UUID `gorm:"type:uuid;not null;default:gen_random_uuid();uniqueIndex"`
	UserID     int64     `gorm:"type:bigint;not null;index"`
	TaskID     int64     `gorm:"type:bigint;not null;index"`
	DateBegan  time.Time `gorm:"type:timestamptz;not null"`
	Duration   int64     `gorm:"type:bigint;not null"`
	Notes      string    `gorm:"type:text;not null;default:''"`
	User       User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Task       Task      `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE"`
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: tx, PreferSimpleProtocol: true}), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	if err := gormDB.WithContext(ctx).AutoMigrate(
		&User{},
		&Session{},
		&Task{},
		&Event{},
	); err != nil {
		return err
	}

	m := gormDB.WithContext(ctx).Migrator()
	if err := m.CreateConstraint(&Session{}, "User"); err != nil {
		return err
	}
	if err := m.CreateConstraint(&Task{}, "User"); err != nil {
		return err
	}
	if err := m.CreateConstraint(&Event{}, "User"); err != nil {
		return err
	}
	if err := m.CreateConstraint(&Event{}, "Task"); err != nil {
		return err
	}

	return nil
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: tx, PreferSimpleProtocol: true}), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: false},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	if err := gormDB.WithContext(ctx).Migrator().DropTable(
		&Event{},
		&Task{},
		&Session{},
		&User{},
	); err != nil {
		return err
	}

	return nil
}
