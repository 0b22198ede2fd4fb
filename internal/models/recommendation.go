package models

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Recommendation links a product to another product it recommends.
type Recommendation struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	Name               string             `gorm:"size:63;not null;index" json:"name" validate:"required,max=63"`
	RecommendationID   int                `json:"recommendationId"`
	RecommendationName string             `gorm:"size:63" json:"recommendationName" validate:"max=63"`
	Type               RecommendationType `gorm:"type:integer;not null;index" json:"type" validate:"recommendation_type"`
	NumberOfLikes      int                `json:"number_of_likes"`
}

// TableName returns the table name for the Recommendation model
func (Recommendation) TableName() string {
	return "recommendations"
}

func (r *Recommendation) String() string {
	return fmt.Sprintf("<Recommendation %s id=[%d] recommendationId=[%d] recommendationName=[%s] type=[%s] number_of_likes=[%d]>",
		r.Name, r.ID, r.RecommendationID, r.RecommendationName, r.Type, r.NumberOfLikes)
}

// BeforeCreate applies the storage default for an unset type.
func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.Type == "" {
		r.Type = DefaultRecommendationType
	}
	return nil
}

// Serialize converts the recommendation into its wire mapping. The id is
// always present and is nil until the recommendation has been created.
func (r *Recommendation) Serialize() map[string]interface{} {
	var id interface{}
	if r.ID != 0 {
		id = r.ID
	}
	return map[string]interface{}{
		"id":                 id,
		"name":               r.Name,
		"recommendationId":   r.RecommendationID,
		"recommendationName": r.RecommendationName,
		"type":               r.Type.String(),
		"number_of_likes":    r.NumberOfLikes,
	}
}

// Deserialize populates the recommendation from a decoded JSON object. The id
// is never read from the input. It returns the receiver so calls can be
// chained.
func (r *Recommendation) Deserialize(data interface{}) (*Recommendation, error) {
	m, ok := data.(map[string]interface{})
	if !ok {
		return nil, newValidationError("",
			"Invalid Recommendation: body of request contained bad or no data (expected a JSON object, got %s)", describe(data))
	}

	name, err := stringField(m, "name")
	if err != nil {
		return nil, err
	}
	likes, err := intField(m, "number_of_likes")
	if err != nil {
		return nil, err
	}
	recID, err := intField(m, "recommendationId")
	if err != nil {
		return nil, err
	}
	recName, err := stringField(m, "recommendationName")
	if err != nil {
		return nil, err
	}
	typeName, err := stringField(m, "type")
	if err != nil {
		return nil, err
	}
	typ, err := ParseRecommendationType(typeName)
	if err != nil {
		return nil, err
	}

	candidate := Recommendation{
		Name:               name,
		NumberOfLikes:      likes,
		RecommendationID:   recID,
		RecommendationName: recName,
		Type:               typ,
	}
	if err := Validate(&candidate); err != nil {
		return nil, err
	}

	r.Name = candidate.Name
	r.NumberOfLikes = candidate.NumberOfLikes
	r.RecommendationID = candidate.RecommendationID
	r.RecommendationName = candidate.RecommendationName
	r.Type = candidate.Type
	return r, nil
}

func lookup(m map[string]interface{}, key string) (interface{}, error) {
	v, ok := m[key]
	if !ok {
		return nil, newValidationError(key, "Invalid Recommendation: missing %s", key)
	}
	return v, nil
}

func stringField(m map[string]interface{}, key string) (string, error) {
	v, err := lookup(m, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", newValidationError(key,
			"Invalid Recommendation: body of request contained bad or no data (%s must be a string, got %s)", key, describe(v))
	}
	return s, nil
}

func intField(m map[string]interface{}, key string) (int, error) {
	v, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	bad := newValidationError(key,
		"Invalid Recommendation: body of request contained bad or no data (%s must be an integer, got %s)", key, describe(v))

	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, bad
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, bad
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil || i > math.MaxInt32 || i < math.MinInt32 {
			return 0, bad
		}
		return int(i), nil
	default:
		return 0, bad
	}
}

func describe(v interface{}) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int32, int64, json.Number:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("recommendation_type", func(fl validator.FieldLevel) bool {
		return RecommendationType(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks the field constraints of r.
func Validate(r *Recommendation) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return newValidationError("", "Invalid Recommendation: %v", err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return newValidationError(fe.Field(), "Invalid Recommendation: %s is required", fe.Field())
	case "max":
		return newValidationError(fe.Field(), "Invalid Recommendation: %s must be at most %s characters", fe.Field(), fe.Param())
	case "recommendation_type":
		return newValidationError(fe.Field(), "Invalid attribute: %v", fe.Value())
	default:
		return newValidationError(fe.Field(), "Invalid Recommendation: %s failed %s", fe.Field(), fe.Tag())
	}
}
