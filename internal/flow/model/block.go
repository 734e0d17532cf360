package model

import "time"

// Block is a block header as returned by the access node.
type Block struct {
	ID        string
	ParentID  string
	Height    uint64
	Timestamp time.Time
}
