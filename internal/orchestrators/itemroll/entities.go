package itemroll

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
)

// ItemEntity wraps vtt.Item to implement core.Entity interface
type ItemEntity struct {
	*vtt.Item
}

// GetID returns the item's ID
func (i *ItemEntity) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *ItemEntity) GetType() string {
	return "item"
}

var _ core.Entity = (*ItemEntity)(nil)

// wrapItem converts a vtt.Item to an ItemEntity
func wrapItem(item *vtt.Item) *ItemEntity {
	return &ItemEntity{Item: item}
}
