// Package idgen generates item identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique ids
type Generator interface {
	Generate() string
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// Sequential numbers ids from 1, e.g. item_1, item_2. Tests use it for
// predictable inventories.
type Sequential struct {
	prefix string
	next   atomic.Uint64
}

func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (g *Sequential) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

// UUID produces prefix_<uuid> ids. Version 7 uuids are used so ids sort by
// creation time; if one cannot be made a random version 4 is used instead.
type UUID struct {
	prefix string
}

func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

func (g *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return join(g.prefix, id.String())
}
