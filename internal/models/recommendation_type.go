package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// RecommendationType is the kind of relationship between two products. The
// name is used on the wire; the ordinal is used only in storage.
type RecommendationType string

const (
	CrossSell RecommendationType = "CROSSSELL"
	Upsell    RecommendationType = "UPSELL"
	Accessory RecommendationType = "ACCESSORY"
)

// DefaultRecommendationType is applied when a type is left unset.
const DefaultRecommendationType = Upsell

var recommendationTypes = []RecommendationType{CrossSell, Upsell, Accessory}

// RecommendationTypes returns the valid types in ordinal order.
func RecommendationTypes() []RecommendationType {
	out := make([]RecommendationType, len(recommendationTypes))
	copy(out, recommendationTypes)
	return out
}

// ParseRecommendationType resolves a name to a type. Only exact names match.
func ParseRecommendationType(name string) (RecommendationType, error) {
	for _, t := range recommendationTypes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", newValidationError("type", "Invalid attribute: %s", name)
}

// Valid reports whether t is one of the enumerated types.
func (t RecommendationType) Valid() bool {
	_, ok := t.Ordinal()
	return ok
}

// Ordinal returns the storage encoding of t.
func (t RecommendationType) Ordinal() (int, bool) {
	for i, v := range recommendationTypes {
		if v == t {
			return i, true
		}
	}
	return -1, false
}

func (t RecommendationType) String() string {
	return string(t)
}

// Value implements the driver.Valuer interface
func (t RecommendationType) Value() (driver.Value, error) {
	ord, ok := t.Ordinal()
	if !ok {
		return nil, fmt.Errorf("invalid recommendation type %q", string(t))
	}
	return int64(ord), nil
}

// Scan implements the sql.Scanner interface
func (t *RecommendationType) Scan(value interface{}) error {
	var ord int64
	switch v := value.(type) {
	case int64:
		ord = v
	case int32:
		ord = int64(v)
	case int:
		ord = int64(v)
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("scan recommendation type: %w", err)
		}
		ord = n
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("scan recommendation type: %w", err)
		}
		ord = n
	case nil:
		*t = DefaultRecommendationType
		return nil
	default:
		return fmt.Errorf("scan recommendation type: unsupported value %T", value)
	}

	if ord < 0 || ord >= int64(len(recommendationTypes)) {
		return fmt.Errorf("scan recommendation type: ordinal %d out of range", ord)
	}
	*t = recommendationTypes[ord]
	return nil
}
