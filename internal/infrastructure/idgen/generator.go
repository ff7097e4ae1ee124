// Package idgen issues booking reference numbers.
package idgen

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// ReferencePrefix starts every booking reference.
const ReferencePrefix = "BK-"

// Generator issues unique booking references.
type Generator interface {
	NextReference() string
}

// SnowflakeGenerator issues time-ordered references from a snowflake node.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new reference generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

// NextReference returns a reference such as "BK-3F9ZK1QW0H4G".
func (g *SnowflakeGenerator) NextReference() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ReferencePrefix + strings.ToUpper(g.node.Generate().Base36())
}
