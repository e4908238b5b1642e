// Package snowflake issues time-ordered unique IDs for database records.
package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init creates the process-wide generator node. nodeID must be unique per
// running instance, in the range 0-1023.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID returns a fresh ID from the process-wide node. Init must have
// been called first.
func NextID() int64 {
	return node.Generate().Int64()
}
