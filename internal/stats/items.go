package stats

import (
	"strings"

	"rift-rewind/internal/api"
)

type itemClass int

const (
	itemOther itemClass = iota
	itemStarter
	itemConsumable
	itemBoots
	itemFullyBuilt
)

func hasTag(item api.Item, tag string) bool {
	for _, t := range item.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func consumableLike(item api.Item) bool {
	if hasTag(item, "Consumable") || hasTag(item, "Trinket") || hasTag(item, "Vision") {
		return true
	}
	text := strings.ToLower(item.Name + " " + item.Description)
	for _, hint := range []string{"potion", "elixir", "ward", "consumable"} {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}

// classifyItem buckets a catalog item for the favorite-item histograms.
// Order matters: starters are recognized before the consumable check so
// Doran's items never land in the consumable bucket.
func classifyItem(item api.Item) itemClass {
	name := strings.ToLower(item.Name)

	if item.Name != "Refillable Potion" &&
		(strings.Contains(item.Name, "Doran") || (hasTag(item, "Jungle") && item.Depth <= 1)) {
		return itemStarter
	}
	if consumableLike(item) {
		return itemConsumable
	}
	if strings.Contains(name, "boots") || strings.Contains(name, "greaves") {
		return itemBoots
	}
	if len(item.Into) == 0 {
		return itemFullyBuilt
	}
	return itemOther
}
