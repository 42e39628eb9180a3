// Package ticket issues the human-presentable identifiers printed on parking
// receipts. The issuer makes no uniqueness check of its own; the unique
// constraint on car_entries.ticket_number is the actual guarantee, and a
// collision surfaces as an insert error.
package ticket

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	Prefix  = "TICKET-"
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length  = 9
)

// Generate returns a ticket number of the form TICKET-XXXXXXXXX, where X is
// an uppercase alphanumeric character from a crypto/rand source.
func Generate() (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("ticket: %w", err)
		}
		buf[i] = charset[n.Int64()]
	}
	return Prefix + string(buf), nil
}
