package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Auth & Membership Tables
// ============================================================

// User represents users table (credentials only; member data lives in profiles)
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Profile represents profiles table. Shares its primary key with users:
// one profile per account, created at registration.
type Profile struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Phone      string    `gorm:"size:20" json:"phone"`
	IDNumber   *string   `gorm:"size:30" json:"id_number"`
	PhotoURL   *string   `gorm:"size:255" json:"photo_url"`
	Status     string    `gorm:"size:20;default:'active'" json:"status"`
	DateJoined time.Time `gorm:"not null" json:"date_joined"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// UserRole represents user_roles table: one row per (member, role) pair.
// The set is replaced wholesale on edit, inside a transaction.
type UserRole struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"size:36;index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Ledger Tables
// ============================================================

// Contribution represents contributions table: one weekly dues payment.
// No uniqueness is enforced on (member_id, week_number, month, year);
// duplicate rows for the same slot are possible.
type Contribution struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	MemberID      string    `gorm:"size:36;not null;index" json:"member_id"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"`
	TransactionID *string   `gorm:"size:50" json:"transaction_id"`
	WeekNumber    int       `gorm:"not null" json:"week_number"`
	Month         int       `gorm:"not null" json:"month"`
	Year          int       `gorm:"not null;index" json:"year"`
	Status        string    `gorm:"size:20;default:'paid'" json:"status"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Member *Profile `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Contribution) TableName() string {
	return "contributions"
}

func (c *Contribution) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContributionResponse DTO
type ContributionResponse struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"member_id"`
	MemberName    string    `json:"member_name,omitempty"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	WeekNumber    int       `json:"week_number"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	PaymentDate   time.Time `json:"payment_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *Contribution) ToResponse() *ContributionResponse {
	resp := &ContributionResponse{
		ID:            c.ID,
		MemberID:      c.MemberID,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		TransactionID: c.TransactionID,
		WeekNumber:    c.WeekNumber,
		Month:         c.Month,
		Year:          c.Year,
		Status:        c.Status,
		Notes:         c.Notes,
		PaymentDate:   c.PaymentDate,
		CreatedAt:     c.CreatedAt,
	}
	if c.Member != nil {
		resp.MemberName = c.Member.FullName
	}
	return resp
}

// ============================================================
// Community Tables
// ============================================================

// Announcement represents announcements table
type Announcement struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedBy *string   `gorm:"size:36" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Event represents events table
type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Venue       *string   `gorm:"size:200" json:"venue"`
	Agenda      *string   `gorm:"type:text" json:"agenda"`
	EventDate   time.Time `gorm:"not null;index" json:"event_date"`
	CreatedBy   *string   `gorm:"size:36" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EventAttendance represents event_attendance table (RSVP + attendance)
type EventAttendance struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EventID    string    `gorm:"size:36;not null;index" json:"event_id"`
	MemberID   string    `gorm:"size:36;not null;index" json:"member_id"`
	RSVPStatus string    `gorm:"size:20;default:'pending'" json:"rsvp_status"`
	Attended   bool      `gorm:"default:false" json:"attended"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

func (EventAttendance) TableName() string {
	return "event_attendance"
}

func (a *EventAttendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Document represents documents table (metadata only; files live elsewhere)
type Document struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	FileURL     string    `gorm:"size:255;not null" json:"file_url"`
	FileType    *string   `gorm:"size:50" json:"file_type"`
	UploadedBy  *string   `gorm:"size:36" json:"uploaded_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Document) TableName() string {
	return "documents"
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&UserRole{},
		&RefreshToken{},
		&Contribution{},
		&Announcement{},
		&Event{},
		&EventAttendance{},
		&Document{},
	)
}
