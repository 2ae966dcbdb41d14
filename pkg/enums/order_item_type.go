package enums

import (
	"fmt"
	"strings"
)

// OrderItemType tags what an order line references.
type OrderItemType string

const (
	OrderItemTypeIngredient OrderItemType = "ingredient"
	OrderItemTypeRecipe     OrderItemType = "recipe"
)

var validOrderItemTypes = []OrderItemType{
	OrderItemTypeIngredient,
	OrderItemTypeRecipe,
}

// String implements fmt.Stringer.
func (t OrderItemType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known OrderItemType.
func (t OrderItemType) IsValid() bool {
	for _, candidate := range validOrderItemTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseOrderItemType converts raw input into an OrderItemType.
func ParseOrderItemType(value string) (OrderItemType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validOrderItemTypes {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order item type %q", value)
}
