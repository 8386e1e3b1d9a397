package utils

import (
	"fmt"
	"math/rand"
	"regexp"
)

// Short customer-facing order ids are all-digit strings of 5 to 7
// characters, distinct from the internal row id.
var shortOrderIdPattern = regexp.MustCompile(`^\d{5,7}$`)

func IsShortOrderId(id string) bool {
	return shortOrderIdPattern.MatchString(id)
}

// DrawFunc produces a candidate short order id.
type DrawFunc func() string

// ExistsFunc reports whether an order with the given short id already
// exists.
type ExistsFunc func(id string) (bool, error)

// RandomOrderId draws a random 5-7 digit numeric id.
func RandomOrderId() string {
	return fmt.Sprint(10000 + rand.Intn(9989999))
}

// GenerateOrderId draws candidate ids until one passes the uniqueness
// check. There is no attempt cap: the id space is large relative to
// expected order volume, so the loop terminates quickly in practice.
// The check-then-insert window is optimistic; a colliding insert fails
// on the unique index and heals on resubmission.
func GenerateOrderId(draw DrawFunc, exists ExistsFunc) (string, error) {
	for {
		id := draw()
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
}

// RandomProductId draws the 6-digit customer-facing product id
// assigned when a product is created without one.
func RandomProductId() string {
	return fmt.Sprint(100000 + rand.Intn(900000))
}
