package shop

import (
	"strings"

	"seckill-guard/internal/pkg/errs"
)

var (
	ErrEmptyName     = errs.New("shop name cannot be empty")
	ErrNameTooLong   = errs.New("shop name exceeds maximum length")
	ErrInvalidTypeID = errs.New("shop type id must be positive")
	ErrInvalidPrice  = errs.New("average price cannot be negative")
	ErrInvalidScore  = errs.New("score must be between 0 and 50")
)

const MaxNameLength = 128

// Update carries the mutable fields of a shop after validation.
type Update struct {
	id        int64
	name      string
	typeID    int64
	area      string
	address   string
	x, y      float64
	avgPrice  int64
	openHours string
	score     int32
}

type UpdateParams struct {
	Name      string
	TypeID    int64
	Area      string
	Address   string
	X, Y      float64
	AvgPrice  int64
	OpenHours string
	Score     int32
}

func NewUpdate(id int64, p UpdateParams) (*Update, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if p.TypeID <= 0 {
		return nil, ErrInvalidTypeID
	}
	if p.AvgPrice < 0 {
		return nil, ErrInvalidPrice
	}
	// Stored as score * 10.
	if p.Score < 0 || p.Score > 50 {
		return nil, ErrInvalidScore
	}
	return &Update{
		id:        id,
		name:      name,
		typeID:    p.TypeID,
		area:      strings.TrimSpace(p.Area),
		address:   strings.TrimSpace(p.Address),
		x:         p.X,
		y:         p.Y,
		avgPrice:  p.AvgPrice,
		openHours: p.OpenHours,
		score:     p.Score,
	}, nil
}

func (u *Update) ID() int64         { return u.id }
func (u *Update) Name() string      { return u.name }
func (u *Update) TypeID() int64     { return u.typeID }
func (u *Update) Area() string      { return u.area }
func (u *Update) Address() string   { return u.address }
func (u *Update) X() float64        { return u.x }
func (u *Update) Y() float64        { return u.y }
func (u *Update) AvgPrice() int64   { return u.avgPrice }
func (u *Update) OpenHours() string { return u.openHours }
func (u *Update) Score() int32      { return u.score }
