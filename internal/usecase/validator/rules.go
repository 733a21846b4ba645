// Package validator enforces field constraints and natural-key uniqueness for
// every entity before it reaches storage.
package validator

import (
	"regexp"
	"time"

	"foodcritic/internal/errors"

	govalidator "github.com/go-playground/validator/v10"
)

// Custom tags registered on the engine.
const (
	tagPersonName     = "personname"
	tagContactName    = "contactname"
	tagRestaurantName = "restaurantname"
	tagUKPhone        = "ukphone"
	tagUSPhone        = "usphone"
	tagPostcode       = "postcode"
	tagPast           = "past"
)

var patterns = map[string]*regexp.Regexp{
	tagPersonName:     regexp.MustCompile(`^[A-Za-z-' .]+$`),
	tagContactName:    regexp.MustCompile(`^[A-Za-z-']+$`),
	tagRestaurantName: regexp.MustCompile(`^[A-Za-z]+$`),
	tagUKPhone:        regexp.MustCompile(`^0[0-9]{10}$`),
	tagUSPhone:        regexp.MustCompile(`^\([2-9][0-9]{2}\)\s?[0-9]{3}-[0-9]{4}$`),
	tagPostcode:       regexp.MustCompile(`^[A-Z0-9]{6}$`),
}

// NewEngine returns a go-playground validator with the project's custom tags registered.
func NewEngine() (*govalidator.Validate, error) {
	engine := govalidator.New()

	for tag, pattern := range patterns {
		if err := engine.RegisterValidation(tag, matches(pattern)); err != nil {
			return nil, errors.Wrapf(err, "failed to register %s validation", tag)
		}
	}

	if err := engine.RegisterValidation(tagPast, inThePast); err != nil {
		return nil, errors.Wrapf(err, "failed to register %s validation", tagPast)
	}

	return engine, nil
}

func matches(pattern *regexp.Regexp) govalidator.Func {
	return func(fl govalidator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func inThePast(fl govalidator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return t.Before(time.Now())
}

// Rule is one constraint on one field of T. Value extracts the field, Tag is
// evaluated by the engine and Message is reported when it fails.
type Rule[T any] struct {
	Field   string
	Tag     string
	Message string
	Value   func(T) any
}

// Rules is an ordered list of field constraints.
type Rules[T any] []Rule[T]

// Check evaluates every rule against subject and returns one message per failing
// field. When several rules fail for a field the earliest one wins.
func (rs Rules[T]) Check(engine *govalidator.Validate, subject T) map[string]string {
	reasons := make(map[string]string)

	for _, rule := range rs {
		if _, failed := reasons[rule.Field]; failed {
			continue
		}

		if err := engine.Var(rule.Value(subject), rule.Tag); err != nil {
			reasons[rule.Field] = rule.Message
		}
	}

	return reasons
}
