package commands

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// IDGenerator issues order ids; see idgen.Generator.
type IDGenerator interface {
	NextID(ctx context.Context, bizTag string) (int64, error)
}
