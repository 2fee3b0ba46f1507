// Package ordernumber issues order numbers derived from UUIDv7 values.
package ordernumber

import (
	"encoding/base32"

	"crave/internal/domain/constants"
	"crave/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Crockford's alphabet drops I, L, O and U so numbers survive being read aloud.
var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// Generator encodes a fresh UUIDv7 in Crockford base32. The time prefix keeps
// numbers roughly sortable by creation.
type Generator struct {
	newID func() (uuid.UUID, error)
}

// New returns a generator backed by uuid.NewV7.
func New() service.OrderNumberGenerator {
	return &Generator{newID: uuid.NewV7}
}

func (g *Generator) Next() (string, error) {
	id, err := g.newID()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate order number")
	}

	return Format(id), nil
}

// Format renders id as an order number: ORD- followed by 26 characters.
func Format(id uuid.UUID) string {
	return constants.OrderNumberPrefix + crockford.EncodeToString(id[:])
}
