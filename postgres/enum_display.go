package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/xy-planning-network/display"
	"github.com/xy-planning-network/display/catalog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// An EnumDisplay is a row of the enum_displays table:
// the display metadata of one member of an enumeration, with every fallback applied.
type EnumDisplay struct {
	ID          uint      `json:"id"`
	EnumName    string    `json:"enumName"`
	Value       int64     `json:"value"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	ShortName   string    `json:"shortName"`
	GroupName   string    `json:"groupName"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder"`
	Position    int       `json:"position"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (EnumDisplay) TableName() string { return "enum_displays" }

var syncedColumns = []string{
	"symbol",
	"name",
	"short_name",
	"group_name",
	"description",
	"sort_order",
	"position",
	"updated_at",
}

// Rows converts every member of e into an EnumDisplay.
// Rows are in display order, which Position records.
func Rows(e display.Enumeration) []EnumDisplay {
	ds := e.Descriptors()
	rows := make([]EnumDisplay, len(ds))
	for i, d := range ds {
		rows[i] = EnumDisplay{
			EnumName:    e.EnumName(),
			Value:       d.Underlying(),
			Symbol:      d.String(),
			Name:        d.Name(),
			ShortName:   d.ShortName(),
			GroupName:   d.GroupName(),
			Description: d.Description(),
			SortOrder:   d.Order(),
			Position:    i,
		}
	}

	return rows
}

// Sync writes the rows of each of enums to the enum_displays table.
//
// Each enumeration is synced in its own transaction:
// existing rows are updated, missing rows are inserted
// and rows for values no longer declared are deleted.
func Sync(ctx context.Context, db *gorm.DB, enums ...display.Enumeration) error {
	for _, e := range enums {
		rows := Rows(e)
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if len(rows) > 0 {
				if err := upsert(tx, rows).Error; err != nil {
					return err
				}
			}

			return prune(tx, e.EnumName(), rows).Error
		})
		if err != nil {
			return fmt.Errorf("syncing %s: %w", e.EnumName(), err)
		}
	}

	return nil
}

// Load reads the rows of the enumeration named name in display order.
// If there are none, Load returns display.ErrNotExist.
func Load(ctx context.Context, db *gorm.DB, name string) ([]EnumDisplay, error) {
	var rows []EnumDisplay
	if err := loadQuery(db.WithContext(ctx), name).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows for %s", display.ErrNotExist, name)
	}

	return rows, nil
}

// Spec converts rows, as Load returns them, back into a catalog.EnumSpec
// so that persisted enumerations can be served like any other catalog.
func Spec(name string, rows []EnumDisplay) catalog.EnumSpec {
	spec := catalog.EnumSpec{Name: name, Members: make([]catalog.MemberSpec, len(rows))}
	for i, row := range rows {
		spec.Members[i] = catalog.MemberSpec{
			Symbol: row.Symbol,
			Value:  catalog.Code(row.Value),
			Display: &display.Display{
				Name:        row.Name,
				ShortName:   row.ShortName,
				GroupName:   row.GroupName,
				Description: row.Description,
				Order:       row.SortOrder,
			},
		}
	}

	return spec
}

func upsert(tx *gorm.DB, rows []EnumDisplay) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "enum_name"}, {Name: "value"}},
		DoUpdates: clause.AssignmentColumns(syncedColumns),
	}).Create(&rows)
}

func prune(tx *gorm.DB, name string, keep []EnumDisplay) *gorm.DB {
	if len(keep) == 0 {
		return tx.Where("enum_name = ?", name).Delete(&EnumDisplay{})
	}

	values := make([]int64, len(keep))
	for i, row := range keep {
		values[i] = row.Value
	}

	return tx.Where("enum_name = ? AND value NOT IN ?", name, values).Delete(&EnumDisplay{})
}

func loadQuery(db *gorm.DB, name string) *gorm.DB {
	return db.Where("enum_name = ?", name).Order("position")
}
