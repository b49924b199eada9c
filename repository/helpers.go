package repository

import (
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path id is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// containsRegex builds a case-insensitive substring match, escaping any
// regex metacharacters in the user-supplied term.
func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// exactRegex builds a case-insensitive whole-value match on the trimmed term.
func exactRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(term)) + "$", Options: "i"}
}
