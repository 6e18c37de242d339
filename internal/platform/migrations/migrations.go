package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&purchaseOrderRecord{},
		&purchaseOrderEventRecord{},
		&projectRecord{},
	)
}

// Purchase order schema mirrors the purchasing Postgres adapter.
type purchaseOrderRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Number    string    `gorm:"column:number;index"`
	Vendor    string    `gorm:"column:vendor"`
	Amount    float64   `gorm:"column:amount"`
	Currency  string    `gorm:"column:currency;size:8"`
	Notes     string    `gorm:"column:notes"`
	Status    string    `gorm:"column:status;type:varchar(32);index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (purchaseOrderRecord) TableName() string { return "purchase_orders" }

// Event schema mirrors the purchasing event log adapter.
type purchaseOrderEventRecord struct {
	ID              string              `gorm:"primaryKey;column:id;size:64"`
	PurchaseOrderID string              `gorm:"column:purchase_order_id;size:64;index"`
	PurchaseOrder   purchaseOrderRecord `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	Type            string              `gorm:"column:type;type:varchar(32)"`
	Notes           string              `gorm:"column:notes"`
	CreatedAt       time.Time           `gorm:"column:created_at;index"`
}

func (purchaseOrderEventRecord) TableName() string { return "purchase_order_events" }

// Project schema mirrors the projects Postgres adapter.
type projectRecord struct {
	ID        string         `gorm:"primaryKey;column:id;size:64"`
	Name      string         `gorm:"column:name"`
	Status    string         `gorm:"column:status;type:varchar(32);index"`
	Budget    float64        `gorm:"column:budget"`
	Tags      pq.StringArray `gorm:"column:tags;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at;index"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (projectRecord) TableName() string { return "projects" }
