package apiutil

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"
)

// IDParam is the {id} path parameter. It is parsed by ParseID rather than
// by huma so a malformed id gets the fixed 400 message.
type IDParam struct {
	ID string `path:"id" doc:"Positive integer id"`
}

// ParseID returns the id when raw is a positive integer.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, huma.Error400BadRequest(MsgInvalidID)
	}
	return id, nil
}

// Parse returns the id carried by the path parameter.
func (p IDParam) Parse() (int64, error) {
	return ParseID(p.ID)
}
